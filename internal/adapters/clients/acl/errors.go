// Package acl is the anti-corruption layer between the remote level
// repository and the domain. The repository serves levels in its own
// envelope, in either the legacy or the stage layout; translators in the
// level subpackage turn those into validated stages, and HTTP failures are
// mapped to domain errors here.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

const maxErrorBodySize = 1 << 20

// problemDetail is the subset of an RFC 9457 body the repository sends.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an error response from the repository to a domain
// error. 400/422 responses carrying field errors become a
// *domain.ValidationError; credential failures and 5xx responses both mean the
// repository cannot serve us and map to domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := cmp.Or(pd.Detail, http.StatusText(resp.StatusCode))
	wrap := func(sentinel error) error { return fmt.Errorf("%s: %w", detail, sentinel) }

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return wrap(domain.ErrNotFound)
	case code == http.StatusConflict:
		return wrap(domain.ErrConflict)
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		if len(pd.Errors) == 0 {
			return wrap(domain.ErrValidation)
		}
		return toValidationError(pd.Errors)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("level repository rejected credentials: %w", wrap(domain.ErrUnavailable))
	case code >= http.StatusInternalServerError:
		return wrap(domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// parseProblemDetail decodes a JSON or problem+json error body. Anything it
// cannot read yields the zero value.
func parseProblemDetail(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil {
		return pd
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/problem+json" && mediaType != "application/json") {
		return pd
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError turns problem locations back into document paths:
// "body.boards[0].goal" becomes "boards[0].goal" and a bare "body" becomes
// the root path "". Locations outside the body are kept as they are.
func toValidationError(details []errorDetail) *domain.ValidationError {
	var fields domain.FieldErrors
	for _, d := range details {
		path := d.Location
		if path == "body" {
			path = ""
		} else if rest, ok := strings.CutPrefix(path, "body."); ok {
			path = rest
		}
		fields.Add(path, d.Message)
	}
	return &domain.ValidationError{Fields: fields}
}
