// Package main is the entry point for twinboard. It loads the level catalog,
// wires all dependencies using samber/do v2, starts the HTTP server and the
// render loop, and shuts both down on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/twinboard/internal/adapters/http"
	"github.com/jsamuelsen11/twinboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/twinboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/twinboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/twinboard/internal/adapters/levelfile"
	"github.com/jsamuelsen11/twinboard/internal/app"
	"github.com/jsamuelsen11/twinboard/internal/app/loop"
	"github.com/jsamuelsen11/twinboard/internal/platform/canvas"
	"github.com/jsamuelsen11/twinboard/internal/platform/config"
	"github.com/jsamuelsen11/twinboard/internal/platform/health"
	"github.com/jsamuelsen11/twinboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/twinboard/internal/platform/logging"
	"github.com/jsamuelsen11/twinboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	readinessTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	driver := do.MustInvoke[*loop.Driver](injector)
	if cfg.Loop.Enabled {
		registry.Register(driver)
	}
	if cfg.LevelRepo.Enabled {
		registry.Register(do.MustInvoke[*acl.LevelClient](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// The loop waits for the server's ready signal before its first frame.
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	loopErr := make(chan error, 1)
	if cfg.Loop.Enabled {
		go func() {
			loopErr <- driver.Run(loopCtx)
		}()
	} else {
		logger.Info("render loop disabled")
		loopErr <- nil
	}

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		stopLoop()
		<-loopErr
		return fmt.Errorf("server failed: %w", err)
	}

	stopLoop()
	if err := <-loopErr; err != nil {
		logger.Error("render loop error", slog.Any("error", err))
	}

	// Graceful shutdown: drain HTTP requests within server.shutdown_timeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	surface := do.MustInvoke[*canvas.Surface](injector)
	if err := surface.Close(); err != nil {
		logger.Error("canvas close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*canvas.Surface, error) {
		return canvas.New(cfg.Canvas.ElementID, cfg.Canvas.Width, cfg.Canvas.Height)
	})

	do.Provide(injector, func(_ do.Injector) (*app.Game, error) {
		game := app.NewGame()
		names, err := levelfile.NewLoader(cfg.Levels.Dir, logger).LoadAll(ctx, game)
		if err != nil {
			return nil, fmt.Errorf("loading levels: %w", err)
		}
		if cfg.Levels.Initial != "" && len(names) > 0 {
			if err := game.Select(cfg.Levels.Initial); err != nil {
				return nil, fmt.Errorf("selecting initial level: %w", err)
			}
		}
		return game, nil
	})

	if cfg.LevelRepo.Enabled {
		do.Provide(injector, func(i do.Injector) (*acl.LevelClient, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.LevelRepo, "level-repo", metrics, logger)
			return acl.NewLevelClient(client, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.StageService, error) {
		game := do.MustInvoke[*app.Game](i)
		opts := []app.StageServiceOption{
			app.WithBatchWorkers(cfg.Stages.BatchWorkers),
			app.WithValidationMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		}
		if cfg.LevelRepo.Enabled {
			opts = append(opts, app.WithLevelClient(do.MustInvoke[*acl.LevelClient](i)))
		}
		return app.NewStageService(game, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*loop.Driver, error) {
		surface := do.MustInvoke[*canvas.Surface](i)
		game := do.MustInvoke[*app.Game](i)
		server := do.MustInvoke[*adapthttp.Server](i)
		return loop.NewDriver(surface, game, loop.NewTicker(cfg.Loop.FPS), logger,
			loop.WithReady(server.Ready()),
			loop.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			loop.WithFPS(cfg.Loop.FPS),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(readinessTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		svc := do.MustInvoke[ports.StageService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		h := adapthttp.Handlers{
			Stage:  handlers.NewStageHandler(svc, cfg.Stages.MaxBodyBytes, cfg.Stages.MaxBatchSize),
			Level:  handlers.NewLevelHandler(svc),
			Loop:   handlers.NewLoopHandler(lazyLoop{i}),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), "level-repo"),
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// lazyLoop resolves the render loop on first use. The driver depends on the
// server for its ready signal, so the router cannot take it directly.
type lazyLoop struct {
	i do.Injector
}

func (l lazyLoop) Status() ports.LoopStatus {
	return do.MustInvoke[*loop.Driver](l.i).Status()
}

func (l lazyLoop) Snapshot(ctx context.Context, format string) (*ports.Frame, error) {
	return do.MustInvoke[*loop.Driver](l.i).Snapshot(ctx, format)
}
