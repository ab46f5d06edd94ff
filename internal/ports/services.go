package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// StageService defines the service port for stage validation and the level
// catalog. Implemented by the application layer; called by inbound adapters.
type StageService interface {
	// ValidateStage decodes and validates a raw stage document.
	// Returns a *domain.ValidationError (wrapping domain.ErrValidation) keyed
	// by document path when the document does not satisfy the schema.
	ValidateStage(ctx context.Context, doc json.RawMessage) (*stage.Stage, error)

	// ValidateStages validates several documents concurrently. Results are
	// returned in input order; each carries its own error.
	ValidateStages(ctx context.Context, docs []json.RawMessage) []StageResult

	// ConvertLegacy converts a legacy level into a stage and validates it.
	ConvertLegacy(ctx context.Context, legacy *level.Legacy) (*stage.Stage, error)

	// ListLevels returns the loaded level names in registration order along
	// with the current selection.
	ListLevels(ctx context.Context) (*LevelCatalog, error)

	// GetLevel returns a loaded level by name.
	// Returns domain.ErrNotFound if no level has that name.
	GetLevel(ctx context.Context, name string) (*stage.Stage, error)

	// SelectLevel makes the named level the one the render loop draws.
	// Returns domain.ErrNotFound if no level has that name.
	SelectLevel(ctx context.Context, name string) error

	// ImportLevel fetches a level from the remote level repository, validates
	// it and adds it to the catalog, replacing any level with the same name.
	// Returns domain.ErrUnavailable when no repository is configured.
	ImportLevel(ctx context.Context, name string) (*stage.Stage, error)
}

// StageResult is the outcome of validating one document in a batch.
type StageResult struct {
	Stage *stage.Stage
	Err   error
}

// LevelCatalog lists the loaded levels. Current is empty when nothing is selected.
type LevelCatalog struct {
	Names   []string
	Current string
}

// LoopStatus is a point-in-time view of the render loop.
type LoopStatus struct {
	Frame   int64
	X       float64
	Running bool
	FPS     int
}

// Frame is an encoded image of the drawing surface.
type Frame struct {
	ContentType string
	Data        []byte
}

// RenderLoop exposes the running render loop to inbound adapters.
type RenderLoop interface {
	// Status returns the current loop state.
	Status() LoopStatus

	// Snapshot encodes the drawing surface in the named format ("png" or
	// "bmp"; empty selects png). Returns domain.ErrValidation for unknown formats.
	Snapshot(ctx context.Context, format string) (*Frame, error)
}
