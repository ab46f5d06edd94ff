package level

import (
	"bytes"
	"fmt"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	domainlevel "github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// ToDomainStage decodes and validates the level carried by dto. Legacy levels
// are split into two boards first. Validation paths are relative to the
// stage document, not to the envelope.
func ToDomainStage(dto *LevelDTO) (*stage.Stage, error) {
	raw := bytes.TrimSpace(dto.Level)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, &domain.ValidationError{Fields: map[string]string{"": domain.MsgRequired}}
	}

	switch format(dto.Format, raw) {
	case FormatLegacy:
		legacy, err := domainlevel.Decode(raw)
		if err != nil {
			return nil, err
		}
		return legacy.ToStage()
	case FormatStage:
		return stage.Decode(raw)
	default:
		return nil, fmt.Errorf("level %q: unsupported format %q: %w", dto.Name, dto.Format, domain.ErrValidation)
	}
}

func format(declared string, raw []byte) string {
	if declared != "" {
		return declared
	}
	if domainlevel.IsLegacy(raw) {
		return FormatLegacy
	}
	return FormatStage
}
