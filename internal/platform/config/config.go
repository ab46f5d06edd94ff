// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Canvas    CanvasConfig    `koanf:"canvas"`
	Loop      LoopConfig      `koanf:"loop"`
	Levels    LevelsConfig    `koanf:"levels"`
	Stages    StagesConfig    `koanf:"stages"`
	LevelRepo ClientConfig    `koanf:"level_repo"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CanvasConfig describes the drawing surface.
type CanvasConfig struct {
	ElementID string `koanf:"element_id"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
}

// LoopConfig holds render loop settings.
type LoopConfig struct {
	Enabled bool `koanf:"enabled"`
	FPS     int  `koanf:"fps"`
}

// LevelsConfig points at the level files loaded at startup.
type LevelsConfig struct {
	Dir     string `koanf:"dir"`
	Initial string `koanf:"initial"`
}

// StagesConfig holds stage validation endpoint limits.
type StagesConfig struct {
	BatchWorkers int   `koanf:"batch_workers"`
	MaxBatchSize int   `koanf:"max_batch_size"`
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	Enabled        bool                 `koanf:"enabled"`
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
