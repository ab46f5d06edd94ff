package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/platform/logging"
)

// defaultMaxBodyBytes is the request body limit when none is configured (1 MB).
const defaultMaxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// readBody reads the whole request body up to limit bytes and checks that it
// is well-formed JSON. On failure it writes a 400 and returns nil. Problems
// with the body as a whole are reported at the root path, i.e. "body".
func readBody(w http.ResponseWriter, r *http.Request, limit int64) json.RawMessage {
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		msg := "could not be read"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
		}
		dto.WriteErrorResponse(w, r, rootError(msg))
		return nil
	}
	if !json.Valid(data) {
		dto.WriteErrorResponse(w, r, rootError("invalid JSON"))
		return nil
	}
	return data
}

// decodeJSONBody reads the body and unmarshals it into dst. On failure it
// writes a 400 and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, limit int64, dst any) bool {
	data := readBody(w, r, limit)
	if data == nil {
		return false
	}
	if err := domain.DecodeObject(data, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func rootError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"": msg}}
}

// levelName extracts the {name} path parameter.
func levelName(r *http.Request) (string, error) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	if name == level.ReservedName {
		return "", &domain.ValidationError{Fields: map[string]string{"name": fmt.Sprintf("%q is reserved", name)}}
	}
	return name, nil
}
