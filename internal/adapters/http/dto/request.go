package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

// ValidateBatchRequest is the body of POST /api/v1/stages/validate-batch.
// Each element is validated as a stage document on its own.
type ValidateBatchRequest struct {
	Stages []json.RawMessage `json:"stages"`
}

// Validate checks that the batch is present, non-empty and no larger than max.
// A max of zero disables the size limit.
func (r *ValidateBatchRequest) Validate(maxItems int) error {
	var fe domain.FieldErrors

	switch {
	case r.Stages == nil:
		fe.Add("stages", domain.MsgRequired)
	case len(r.Stages) == 0:
		fe.Add("stages", "must not be empty")
	case maxItems > 0 && len(r.Stages) > maxItems:
		fe.Add("stages", fmt.Sprintf("must contain at most %d items, got %d", maxItems, len(r.Stages)))
	}

	return fe.Err()
}

// SelectLevelRequest is the body of PUT /api/v1/levels/current.
type SelectLevelRequest struct {
	Name string `json:"name"`
}

// Validate checks that a level name was given.
func (r *SelectLevelRequest) Validate() error {
	var fe domain.FieldErrors
	if strings.TrimSpace(r.Name) == "" {
		fe.Add("name", domain.MsgRequired)
	}
	return fe.Err()
}
