package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
	"github.com/jsamuelsen11/twinboard/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const emptyStageJSON = `{"boards": [], "blocks": []}`

// --- NewStageService ---

func TestNewStageService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewStageService(NewGame(), nil)
	if svc.logger == nil {
		t.Fatal("NewStageService(nil logger) should create a no-op logger, got nil")
	}
	if svc.batchWorkers != defaultBatchWorkers {
		t.Errorf("batchWorkers = %d, want %d", svc.batchWorkers, defaultBatchWorkers)
	}
}

// --- ValidateStage ---

func TestStageService_ValidateStage(t *testing.T) {
	t.Parallel()

	t.Run("accepts empty sequences", func(t *testing.T) {
		t.Parallel()
		svc := NewStageService(NewGame(), discardLogger())

		st, err := svc.ValidateStage(context.Background(), json.RawMessage(emptyStageJSON))
		if err != nil {
			t.Fatalf("ValidateStage() error = %v, want nil", err)
		}
		if len(st.Boards) != 0 || len(st.Blocks) != 0 {
			t.Errorf("ValidateStage() = %+v, want empty stage", st)
		}
	})

	t.Run("rejects board without fields", func(t *testing.T) {
		t.Parallel()
		svc := NewStageService(NewGame(), discardLogger())

		_, err := svc.ValidateStage(context.Background(), json.RawMessage(`{"boards": [{}], "blocks": []}`))

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ValidateStage() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["boards[0].dimensions"]; !ok {
			t.Errorf("Fields missing boards[0].dimensions, got %v", verr.Fields)
		}
	})
}

// --- ValidateStages ---

func TestStageService_ValidateStages(t *testing.T) {
	t.Parallel()

	svc := NewStageService(NewGame(), discardLogger(), WithBatchWorkers(2))

	docs := []json.RawMessage{
		json.RawMessage(emptyStageJSON),
		json.RawMessage(`{"boards": [{}], "blocks": []}`),
		json.RawMessage(`not json`),
		json.RawMessage(emptyStageJSON),
	}

	results := svc.ValidateStages(context.Background(), docs)

	if len(results) != len(docs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(docs))
	}
	wantErr := []bool{false, true, true, false}
	for i, r := range results {
		if (r.Err != nil) != wantErr[i] {
			t.Errorf("results[%d].Err = %v, wantErr %v", i, r.Err, wantErr[i])
		}
		if r.Err == nil && r.Stage == nil {
			t.Errorf("results[%d].Stage = nil on success", i)
		}
	}
}

func TestStageService_ValidateStages_Empty(t *testing.T) {
	t.Parallel()

	svc := NewStageService(NewGame(), discardLogger())

	results := svc.ValidateStages(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Errorf("ValidateStages(nil) = %v, want empty non-nil slice", results)
	}
}

// --- ConvertLegacy ---

func TestStageService_ConvertLegacy(t *testing.T) {
	t.Parallel()

	svc := NewStageService(NewGame(), discardLogger())

	st, err := svc.ConvertLegacy(context.Background(), level.Empty())
	if err != nil {
		t.Fatalf("ConvertLegacy() error = %v", err)
	}
	if len(st.Boards) != 2 {
		t.Errorf("len(Boards) = %d, want 2", len(st.Boards))
	}

	bad := level.Empty()
	bad.Player1 = nil
	_, err = svc.ConvertLegacy(context.Background(), bad)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ConvertLegacy(no player1) error = %v, want ErrValidation", err)
	}
}

// --- Catalog ---

func TestStageService_Catalog(t *testing.T) {
	t.Parallel()

	game := NewGame()
	game.Add("one", &stage.Stage{})
	game.Add("two", &stage.Stage{})
	svc := NewStageService(game, discardLogger())
	ctx := context.Background()

	cat, err := svc.ListLevels(ctx)
	if err != nil {
		t.Fatalf("ListLevels() error = %v", err)
	}
	if cat.Current != "one" || len(cat.Names) != 2 {
		t.Errorf("ListLevels() = %+v, want current=one with 2 names", cat)
	}

	if err := svc.SelectLevel(ctx, "two"); err != nil {
		t.Fatalf("SelectLevel(two) error = %v", err)
	}
	cat, _ = svc.ListLevels(ctx)
	if cat.Current != "two" {
		t.Errorf("Current = %q after SelectLevel, want two", cat.Current)
	}

	if err := svc.SelectLevel(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SelectLevel(nope) error = %v, want ErrNotFound", err)
	}

	if _, err := svc.GetLevel(ctx, "one"); err != nil {
		t.Errorf("GetLevel(one) error = %v", err)
	}
	if _, err := svc.GetLevel(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetLevel(nope) error = %v, want ErrNotFound", err)
	}
}

// --- ImportLevel ---

func TestStageService_ImportLevel(t *testing.T) {
	t.Parallel()

	t.Run("unavailable without client", func(t *testing.T) {
		t.Parallel()
		svc := NewStageService(NewGame(), discardLogger())

		_, err := svc.ImportLevel(context.Background(), "remote")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ImportLevel() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("adds fetched level", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockLevelClient(t)
		game := NewGame()
		svc := NewStageService(game, discardLogger(), WithLevelClient(client))

		want := &stage.Stage{}
		client.EXPECT().FetchLevel(mock.Anything, "remote").Return(want, nil)

		got, err := svc.ImportLevel(context.Background(), "remote")
		if err != nil {
			t.Fatalf("ImportLevel() error = %v", err)
		}
		if got != want {
			t.Errorf("ImportLevel() = %p, want %p", got, want)
		}
		if st, ok := game.Get("remote"); !ok || st != want {
			t.Error("imported level not registered in game")
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockLevelClient(t)
		game := NewGame()
		svc := NewStageService(game, discardLogger(), WithLevelClient(client))

		client.EXPECT().FetchLevel(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		_, err := svc.ImportLevel(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ImportLevel() error = %v, want ErrNotFound", err)
		}
		if len(game.Levels()) != 0 {
			t.Error("failed import registered a level")
		}
	})
}
