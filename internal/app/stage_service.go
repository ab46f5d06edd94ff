// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/twinboard/internal/app/fanout"
	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
	"github.com/jsamuelsen11/twinboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// Compile-time check that StageService implements ports.StageService.
var _ ports.StageService = (*StageService)(nil)

// defaultBatchWorkers bounds ValidateStages when no limit is configured.
const defaultBatchWorkers = 4

// StageService implements ports.StageService. It validates stage documents,
// manages the level catalog held by the Game, and imports levels from the
// remote repository through the LevelClient port.
type StageService struct {
	game         *Game
	levelClient  ports.LevelClient
	metrics      *telemetry.Metrics
	batchWorkers int
	logger       *slog.Logger
}

// StageServiceOption configures a StageService.
type StageServiceOption func(*StageService)

// WithLevelClient enables ImportLevel.
func WithLevelClient(c ports.LevelClient) StageServiceOption {
	return func(s *StageService) { s.levelClient = c }
}

// WithValidationMetrics counts validated documents by result.
func WithValidationMetrics(m *telemetry.Metrics) StageServiceOption {
	return func(s *StageService) { s.metrics = m }
}

// WithBatchWorkers bounds the concurrency of ValidateStages.
func WithBatchWorkers(n int) StageServiceOption {
	return func(s *StageService) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

// NewStageService creates a StageService backed by game. If logger is nil, a
// no-op logger is used.
func NewStageService(game *Game, logger *slog.Logger, opts ...StageServiceOption) *StageService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &StageService{
		game:         game,
		batchWorkers: defaultBatchWorkers,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateStage decodes and validates a single stage document.
func (s *StageService) ValidateStage(ctx context.Context, doc json.RawMessage) (*stage.Stage, error) {
	st, err := stage.Decode(doc)
	s.recordValidation(ctx, err)
	if err != nil {
		s.logger.DebugContext(ctx, "stage rejected", slog.Any("error", err))
		return nil, err
	}
	return st, nil
}

// ValidateStages validates docs concurrently, preserving input order.
func (s *StageService) ValidateStages(ctx context.Context, docs []json.RawMessage) []ports.StageResult {
	s.logger.InfoContext(ctx, "validating stage batch", slog.Int("count", len(docs)))

	results := fanout.Run(ctx, s.batchWorkers, docs, s.ValidateStage)

	out := make([]ports.StageResult, len(results))
	for i, r := range results {
		out[i] = ports.StageResult{Stage: r.Value, Err: r.Err}
	}
	return out
}

// ConvertLegacy converts a legacy level into a validated stage.
func (s *StageService) ConvertLegacy(ctx context.Context, legacy *level.Legacy) (*stage.Stage, error) {
	st, err := legacy.ToStage()
	s.recordValidation(ctx, err)
	if err != nil {
		s.logger.DebugContext(ctx, "legacy level rejected", slog.Any("error", err))
		return nil, err
	}
	return st, nil
}

// ListLevels returns the catalog in registration order.
func (s *StageService) ListLevels(_ context.Context) (*ports.LevelCatalog, error) {
	current, _ := s.game.Current()
	return &ports.LevelCatalog{Names: s.game.Levels(), Current: current}, nil
}

// GetLevel returns a loaded level by name.
func (s *StageService) GetLevel(_ context.Context, name string) (*stage.Stage, error) {
	st, ok := s.game.Get(name)
	if !ok {
		return nil, fmt.Errorf("level %q: %w", name, domain.ErrNotFound)
	}
	return st, nil
}

// SelectLevel switches the level drawn by the render loop.
func (s *StageService) SelectLevel(ctx context.Context, name string) error {
	if err := s.game.Select(name); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "level selected", slog.String("level_name", name))
	return nil
}

// ImportLevel fetches a level from the remote repository and adds it to the
// catalog.
func (s *StageService) ImportLevel(ctx context.Context, name string) (*stage.Stage, error) {
	if s.levelClient == nil {
		return nil, fmt.Errorf("level repository is not configured: %w", domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "importing level", slog.String("level_name", name))

	st, err := s.levelClient.FetchLevel(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to import level",
				slog.String("operation", "ImportLevel"),
				slog.String("level_name", name),
				slog.Any("error", err),
			)
		}
		return nil, fmt.Errorf("fetching level %q: %w", name, err)
	}

	s.game.Add(name, st)
	return st, nil
}

func (s *StageService) recordValidation(ctx context.Context, err error) {
	if s.metrics == nil {
		return
	}
	result := telemetry.ResultValid
	if err != nil {
		result = telemetry.ResultInvalid
	}
	s.metrics.StageValidationTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrResult.String(result)),
	)
}
