package ports

import "context"

// HealthChecker is a component that takes part in the readiness probe.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness report, for example
	// "render-loop" or "level-repo".
	Name() string

	// HealthCheck returns nil while the component can do its job. It must
	// return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; a nil value is healthy.
	CheckAll(ctx context.Context) map[string]error
}
