package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/twinboard/internal/app/fanout"
)

var errBadStage = errors.New("bad stage")

// checkStage stands in for per-stage validation.
func checkStage(_ context.Context, doc string) (int, error) {
	if strings.HasPrefix(doc, "bad") {
		return 0, errBadStage
	}
	return len(doc), nil
}

func TestRun_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		docs    []string
		want    []fanout.Result[int]
	}{
		{
			name:    "empty batch",
			workers: 4,
			docs:    []string{},
			want:    []fanout.Result[int]{},
		},
		{
			name:    "all valid",
			workers: 2,
			docs:    []string{"a", "bb", "ccc"},
			want:    []fanout.Result[int]{{Value: 1}, {Value: 2}, {Value: 3}},
		},
		{
			name:    "one invalid keeps neighbours",
			workers: 3,
			docs:    []string{"a", "bad", "ccc"},
			want:    []fanout.Result[int]{{Value: 1}, {Err: errBadStage}, {Value: 3}},
		},
		{
			name:    "more workers than items",
			workers: 64,
			docs:    []string{"aa", "b"},
			want:    []fanout.Result[int]{{Value: 2}, {Value: 1}},
		},
		{
			name:    "zero workers still runs",
			workers: 0,
			docs:    []string{"abcd"},
			want:    []fanout.Result[int]{{Value: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Run(context.Background(), tt.workers, tt.docs, checkStage)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_OrderSurvivesUnevenLatency(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{25 * time.Millisecond, 5 * time.Millisecond, 15 * time.Millisecond, 0}
	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, delays[i], r.Value, "results[%d]", i)
	}
}

func TestRun_WorkerBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		workers  int
		wantPeak int32
	}{
		{workers: 0, wantPeak: 1},
		{workers: 1, wantPeak: 1},
		{workers: 3, wantPeak: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("workers=%d", tt.workers), func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			items := make([]int, 12)
			fanout.Run(context.Background(), tt.workers, items, func(context.Context, int) (struct{}, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return struct{}{}, nil
			})

			assert.LessOrEqual(t, peak.Load(), tt.wantPeak)
			assert.Positive(t, peak.Load())
		})
	}
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("before start", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		results := fanout.Run(ctx, 4, []string{"a", "b", "c"}, func(ctx context.Context, doc string) (int, error) {
			calls.Add(1)
			return checkStage(ctx, doc)
		})

		assert.Zero(t, calls.Load())
		for i, r := range results {
			assert.ErrorIs(t, r.Err, context.Canceled, "results[%d]", i)
		}
	})

	t.Run("mid batch", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results := fanout.Run(ctx, 1, []string{"first", "second", "third"}, func(_ context.Context, doc string) (string, error) {
			if doc == "first" {
				cancel()
			}
			return doc, nil
		})

		assert.Equal(t, "first", results[0].Value)
		require.NoError(t, results[0].Err)
		assert.ErrorIs(t, results[2].Err, context.Canceled)
	})

	t.Run("fn sees canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
			cancel()
			return 0, ctx.Err()
		})

		assert.ErrorIs(t, results[0].Err, context.Canceled)
	})
}

func TestRun_PanicIsolatedToItem(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 2, []string{"a", "boom", "c"}, func(_ context.Context, doc string) (string, error) {
		if doc == "boom" {
			panic("segment index out of range")
		}
		return doc, nil
	})

	var pe *fanout.PanicError
	require.ErrorAs(t, results[1].Err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Equal(t, "segment index out of range", pe.Value)
	assert.EqualError(t, pe, "item 1 panicked: segment index out of range")
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)
}
