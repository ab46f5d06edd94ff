package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems accumulates violations across sections.
type problems []error

func (p *problems) checkf(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.checkf(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate checks every section and returns all problems joined, or nil.
func (c *Config) Validate() error {
	var p problems

	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Canvas.validate(&p)
	c.Loop.validate(&p)
	c.Stages.validate(&p)
	c.LevelRepo.validate(&p, "level_repo")
	c.Telemetry.validate(&p)

	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.checkf(s.Port >= 1 && s.Port <= 65535, "server.port must be in 1..65535, got %d", s.Port)
	p.checkf(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.checkf(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.checkf(s.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (c *CanvasConfig) validate(p *problems) {
	p.checkf(c.ElementID != "", "canvas.element_id must not be empty")
	p.checkf(c.Width > 0 && c.Height > 0, "canvas size must be positive, got %dx%d", c.Width, c.Height)
}

func (l *LoopConfig) validate(p *problems) {
	if l.Enabled {
		p.checkf(l.FPS >= 1 && l.FPS <= 240, "loop.fps must be in 1..240, got %d", l.FPS)
	}
}

func (s *StagesConfig) validate(p *problems) {
	p.checkf(s.BatchWorkers >= 1, "stages.batch_workers must be >= 1, got %d", s.BatchWorkers)
	p.checkf(s.MaxBatchSize >= 1, "stages.max_batch_size must be >= 1, got %d", s.MaxBatchSize)
	p.checkf(s.MaxBodyBytes >= 1, "stages.max_body_bytes must be >= 1, got %d", s.MaxBodyBytes)
}

// validate skips a disabled client entirely; its remaining fields are inert.
func (cl *ClientConfig) validate(p *problems, key string) {
	if !cl.Enabled {
		return
	}

	u, err := url.Parse(cl.BaseURL)
	p.checkf(err == nil && u.Scheme != "" && u.Host != "", "%s.base_url must be an absolute URL, got %q", key, cl.BaseURL)
	p.checkf(cl.Timeout > 0, "%s.timeout must be positive", key)
	p.checkf(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", key, cl.Retry.MaxAttempts)
	p.checkf(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", key, cl.Retry.Multiplier)
	p.checkf(cl.CircuitBreaker.MaxFailures >= 1, "%s.circuit_breaker.max_failures must be >= 1, got %d",
		key, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.checkf(rl.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", key)
	p.checkf(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"%s.rate_limit.burst_size must be >= 1 when rate limiting is on", key)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	p.checkf(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
}
