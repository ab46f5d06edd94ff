package loop

import (
	"context"
	"time"
)

// Scheduler paces the loop. Wait blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
	Stop()
}

// Ticker is a Scheduler backed by time.Ticker. A frame that overruns its
// slot drops the missed ticks instead of queueing them.
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a Ticker firing fps times per second. Values below 1
// are treated as 1.
func NewTicker(fps int) *Ticker {
	if fps < 1 {
		fps = 1
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait implements Scheduler.
func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-t.t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop implements Scheduler.
func (t *Ticker) Stop() {
	t.t.Stop()
}
