package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/twinboard/internal/adapters/clients/acl/level"
	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
	"github.com/jsamuelsen11/twinboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/twinboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LevelClient   = (*LevelClient)(nil)
	_ ports.HealthChecker = (*LevelClient)(nil)
)

// LevelClient is the outbound adapter for the remote level repository. It
// implements [ports.LevelClient].
//
// Every call goes through [httpclient.Client], so it is rate limited, retried
// with backoff and guarded by a circuit breaker. Repository payloads are
// translated by the [level] subpackage; HTTP failures by [TranslateHTTPError].
type LevelClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewLevelClient creates a LevelClient whose base URL is the repository root
// (e.g. "https://levels.example.com/api/v1").
func NewLevelClient(client *httpclient.Client, logger *slog.Logger) *LevelClient {
	return &LevelClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// FetchLevel downloads GET /levels/{name} and returns the validated stage.
// Returns [domain.ErrNotFound] on 404 and a *domain.ValidationError when the
// downloaded level does not satisfy the stage schema.
func (c *LevelClient) FetchLevel(ctx context.Context, name string) (*stage.Stage, error) {
	if name == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}

	var dto level.LevelDTO
	if err := c.req.Get(ctx, "/levels/"+url.PathEscape(name), &dto); err != nil {
		return nil, err
	}

	st, err := level.ToDomainStage(&dto)
	if err != nil {
		c.logger.WarnContext(ctx, "repository served an invalid level",
			slog.String("level_name", name),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return st, nil
}

// Name returns the identifier used when registering with a
// [ports.HealthRegistry]; it is the service name the HTTP client was built with.
func (c *LevelClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports repository availability from the circuit breaker state
// without making a network call. An open breaker does not make this service
// unready for rendering; it only means imports will fail fast.
func (c *LevelClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
