package loop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/platform/canvas"
	"github.com/jsamuelsen11/twinboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RenderLoop    = (*Driver)(nil)
	_ ports.HealthChecker = (*Driver)(nil)
)

// Errors reported by HealthCheck.
var (
	ErrNotRunning = errors.New("render loop is not running")
	ErrNoFrame    = errors.New("render loop has not drawn a frame yet")
)

// Driver owns the drawing surface and the loop state. Run must be called at
// most once.
type Driver struct {
	surface *canvas.Surface
	game    Renderer
	sched   Scheduler
	ready   <-chan struct{}
	fps     int
	metrics *telemetry.Metrics
	logger  *slog.Logger

	mu      sync.RWMutex
	state   State
	running bool
	failing bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithReady delays the first frame until ready is closed.
func WithReady(ready <-chan struct{}) Option {
	return func(d *Driver) { d.ready = ready }
}

// WithMetrics records frame counts and durations.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// WithFPS sets the frame rate reported by Status. It does not affect pacing,
// which is up to the Scheduler.
func WithFPS(fps int) Option {
	return func(d *Driver) { d.fps = fps }
}

// NewDriver creates a Driver. If logger is nil, a no-op logger is used.
func NewDriver(surface *canvas.Surface, game Renderer, sched Scheduler, logger *slog.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Driver{
		surface: surface,
		game:    game,
		sched:   sched,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run waits for the ready signal, draws the first frame, and then draws one
// frame per scheduler tick until ctx is cancelled. Cancellation is the normal
// way to stop the loop and yields a nil error.
func (d *Driver) Run(ctx context.Context) error {
	defer d.sched.Stop()

	if d.ready != nil {
		select {
		case <-d.ready:
		case <-ctx.Done():
			return nil
		}
	}

	d.setRunning(true)
	defer d.setRunning(false)

	d.logger.InfoContext(ctx, "render loop started",
		slog.String("element_id", d.surface.ElementID()),
		slog.Int("fps", d.fps),
	)

	for {
		d.frame(ctx)

		if err := d.sched.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				d.logger.InfoContext(ctx, "render loop stopped", slog.Int64("frame", d.State().Frame))
				return nil
			}
			return fmt.Errorf("waiting for next frame: %w", err)
		}
	}
}

func (d *Driver) frame(ctx context.Context) {
	start := time.Now()

	err := d.surface.Draw(func(dc domain.DrawingContext) error {
		d.mu.Lock()
		defer d.mu.Unlock()

		next, err := Step(d.state, dc, d.game)
		d.state = next
		return err
	})

	if d.metrics != nil {
		d.metrics.LoopFramesTotal.Add(ctx, 1)
		d.metrics.LoopFrameDuration.Record(ctx, time.Since(start).Seconds())
	}

	// Log state transitions only, a failing frame repeats every tick.
	d.mu.Lock()
	wasFailing := d.failing
	d.failing = err != nil
	d.mu.Unlock()

	switch {
	case err != nil && !wasFailing:
		d.logger.WarnContext(ctx, "frame drawing failed",
			slog.String("operation", "Frame"),
			slog.Any("error", err),
		)
	case err == nil && wasFailing:
		d.logger.InfoContext(ctx, "frame drawing recovered")
	}
}

// State returns the state after the most recent frame.
func (d *Driver) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Status implements ports.RenderLoop.
func (d *Driver) Status() ports.LoopStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return ports.LoopStatus{
		Frame:   d.state.Frame,
		X:       d.state.X,
		Running: d.running,
		FPS:     d.fps,
	}
}

// Snapshot implements ports.RenderLoop.
func (d *Driver) Snapshot(_ context.Context, format string) (*ports.Frame, error) {
	f, err := canvas.ParseFormat(format)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"format": fmt.Sprintf("must be %q or %q", canvas.FormatPNG, canvas.FormatBMP),
		}}
	}

	var buf bytes.Buffer
	if err := d.surface.Snapshot(&buf, f); err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	return &ports.Frame{ContentType: f.ContentType(), Data: buf.Bytes()}, nil
}

// Name implements ports.HealthChecker.
func (d *Driver) Name() string { return "render-loop" }

// HealthCheck implements ports.HealthChecker. The loop is healthy once it is
// running and has drawn at least one frame.
func (d *Driver) HealthCheck(_ context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	switch {
	case !d.running:
		return ErrNotRunning
	case d.state.Frame == 0:
		return ErrNoFrame
	default:
		return nil
	}
}

func (d *Driver) setRunning(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = v
}
