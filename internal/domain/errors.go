package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Shared validation messages.
const (
	MsgRequired = "is required"
	MsgNotArray = "must be an array"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Field keys are paths into the validated document, e.g. "boards[0].dimensions"
// or "segments[1][2]".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+e.Fields[path])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Paths returns the failing field paths in sorted order.
func (e *ValidationError) Paths() []string {
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// FieldErrors accumulates path-keyed validation messages while an entity is
// checked. The zero value is ready to use.
type FieldErrors map[string]string

// Add records msg for path. The first message recorded for a path wins.
func (f *FieldErrors) Add(path, msg string) {
	if *f == nil {
		*f = make(FieldErrors)
	}
	if _, exists := (*f)[path]; !exists {
		(*f)[path] = msg
	}
}

// Failed reports whether path or any path nested under it already has a
// recorded failure.
func (f FieldErrors) Failed(path string) bool {
	for p := range f {
		if p == path || path == "" ||
			strings.HasPrefix(p, path+".") || strings.HasPrefix(p, path+"[") {
			return true
		}
	}
	return false
}

// Merge copies the fields of a nested *ValidationError under prefix. Errors
// that are not validation errors are recorded at prefix itself.
func (f *FieldErrors) Merge(prefix string, err error) {
	if err == nil {
		return
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		f.Add(prefix, err.Error())
		return
	}
	for path, msg := range verr.Fields {
		f.Add(JoinPath(prefix, path), msg)
	}
}

// Err returns a *ValidationError when any field failed, nil otherwise.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}

// JoinPath appends a child path to a parent path. Index segments ("[3]") are
// attached without a separating dot.
func JoinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

// Index formats an element path such as "boards[2]".
func Index(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
