package level

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

const (
	stageJSON  = `{"boards":[{"dimensions":[2,2],"player":{"position":[0,0],"color":[0,0,0]},"goal":[1,1]}],"blocks":[]}`
	legacyJSON = `{"dimensions":[2,2],"player1":{"position":[0,0],"color":[1,1,1]},"player2":{"position":[1,0],"color":[2,2,2]},"goal1":[1,1],"goal2":[0,1],"blocks":[]}`
)

func TestToDomainStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dto        LevelDTO
		wantBoards int
		wantErr    error
		wantPath   string
	}{
		{name: "stage detected", dto: LevelDTO{Level: json.RawMessage(stageJSON)}, wantBoards: 1},
		{name: "stage declared", dto: LevelDTO{Format: FormatStage, Level: json.RawMessage(stageJSON)}, wantBoards: 1},
		{name: "legacy detected", dto: LevelDTO{Level: json.RawMessage(legacyJSON)}, wantBoards: 2},
		{name: "legacy declared", dto: LevelDTO{Format: FormatLegacy, Level: json.RawMessage(legacyJSON)}, wantBoards: 2},
		{
			name:     "missing level",
			dto:      LevelDTO{Name: "x"},
			wantErr:  domain.ErrValidation,
			wantPath: "",
		},
		{
			name:     "null level",
			dto:      LevelDTO{Level: json.RawMessage(" null ")},
			wantErr:  domain.ErrValidation,
			wantPath: "",
		},
		{
			name:    "unknown format",
			dto:     LevelDTO{Format: "zip", Level: json.RawMessage(stageJSON)},
			wantErr: domain.ErrValidation,
		},
		{
			name:     "declared stage but legacy body",
			dto:      LevelDTO{Format: FormatStage, Level: json.RawMessage(legacyJSON)},
			wantErr:  domain.ErrValidation,
			wantPath: "boards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st, err := ToDomainStage(&tt.dto)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToDomainStage() error = %v, want errors.Is %v", err, tt.wantErr)
				}
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					if _, ok := verr.Fields[tt.wantPath]; !ok {
						t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantPath)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ToDomainStage() error = %v", err)
			}
			if len(st.Boards) != tt.wantBoards {
				t.Errorf("len(Boards) = %d, want %d", len(st.Boards), tt.wantBoards)
			}
		})
	}
}
