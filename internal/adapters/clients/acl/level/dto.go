// Package level translates level repository payloads into domain stages.
package level

import "encoding/json"

// Formats the repository labels its levels with.
const (
	FormatLegacy = "legacy"
	FormatStage  = "stage"
)

// LevelDTO is the repository's envelope around a single level. Format may be
// empty, in which case the layout is detected from the payload itself.
type LevelDTO struct {
	Name   string          `json:"name"`
	Format string          `json:"format,omitempty"`
	Level  json.RawMessage `json:"level"`
}
