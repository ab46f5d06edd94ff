package config

const (
	defaultServerPort = 8080

	defaultCanvasWidth  = 854
	defaultCanvasHeight = 480
	defaultLoopFPS      = 60

	defaultBatchWorkers = 4
	defaultMaxBatchSize = 100
	defaultMaxBodyBytes = 1 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"canvas.element_id": "canvas",
		"canvas.width":      defaultCanvasWidth,
		"canvas.height":     defaultCanvasHeight,

		"loop.enabled": true,
		"loop.fps":     defaultLoopFPS,

		"levels.dir":     "configs/levels",
		"levels.initial": "",

		"stages.batch_workers":  defaultBatchWorkers,
		"stages.max_batch_size": defaultMaxBatchSize,
		"stages.max_body_bytes": defaultMaxBodyBytes,

		"level_repo.enabled":                         false,
		"level_repo.base_url":                        "http://localhost:8081",
		"level_repo.api_key":                         "",
		"level_repo.timeout":                         "10s",
		"level_repo.retry.max_attempts":              defaultRetryMaxAttempts,
		"level_repo.retry.initial_interval":          "100ms",
		"level_repo.retry.max_interval":              "5s",
		"level_repo.retry.multiplier":                defaultRetryMultiplier,
		"level_repo.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"level_repo.circuit_breaker.timeout":         "30s",
		"level_repo.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"level_repo.rate_limit.requests_per_second":  0,
		"level_repo.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "twinboard",
	}
}
