package ports

import (
	"context"

	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// LevelClient defines the client port for the remote level repository.
// Implemented by the ACL adapter; called by the application layer.
type LevelClient interface {
	// FetchLevel downloads the named level and returns it as a validated stage.
	// Returns domain.ErrNotFound if the repository has no such level and
	// domain.ErrValidation if the downloaded level is malformed.
	FetchLevel(ctx context.Context, name string) (*stage.Stage, error)
}
