// Package level handles the legacy single-file level format, in which the two
// boards are flattened into player1/player2 and goal1/goal2 fields that share
// one set of dimensions. Legacy levels are converted into stage documents and
// then validated by the stage schema.
package level

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/board"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// Legacy is the wire representation of a legacy level.
type Legacy struct {
	Dimensions []int                 `json:"dimensions"`
	Player1    *board.PlayerDocument `json:"player1"`
	Player2    *board.PlayerDocument `json:"player2"`
	Goal1      []int                 `json:"goal1"`
	Goal2      []int                 `json:"goal2"`
	Blocks     []json.RawMessage     `json:"blocks"`
}

// ReservedName addresses the selected level in the level API, so no level
// may be registered under it.
const ReservedName = "current"

// Default player colors of an empty level.
var (
	defaultPlayer1Color = []int{66, 134, 244}
	defaultPlayer2Color = []int{244, 83, 65}
)

// Empty returns the starter level: a 5x5 grid with both players in the top-left
// corner, both goals in the bottom-right corner and no blocks.
func Empty() *Legacy {
	return &Legacy{
		Dimensions: []int{5, 5},
		Player1:    &board.PlayerDocument{Position: []int{0, 0}, Color: defaultPlayer1Color},
		Player2:    &board.PlayerDocument{Position: []int{0, 0}, Color: defaultPlayer2Color},
		Goal1:      []int{4, 4},
		Goal2:      []int{4, 4},
		Blocks:     []json.RawMessage{},
	}
}

// IsLegacy reports whether a raw JSON object uses the legacy layout. Detection
// keys on the presence of "player1", which stage documents never carry.
func IsLegacy(data []byte) bool {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return false
	}
	_, ok := top["player1"]
	return ok
}

// Decode parses raw JSON into a Legacy level. Members are decoded one at a
// time and every mistyped member is reported at its path. Missing members are
// left for ToStage to report.
func Decode(data []byte) (*Legacy, error) {
	fields, err := domain.DecodeFields(data)
	if err != nil {
		return nil, err
	}

	var fe domain.FieldErrors
	l := &Legacy{
		Dimensions: domain.DecodeInts(&fe, "dimensions", fields["dimensions"]),
		Player1:    board.DecodePlayer(&fe, "player1", fields["player1"]),
		Player2:    board.DecodePlayer(&fe, "player2", fields["player2"]),
		Goal1:      domain.DecodeInts(&fe, "goal1", fields["goal1"]),
		Goal2:      domain.DecodeInts(&fe, "goal2", fields["goal2"]),
	}
	blocks, _, err := domain.DecodeArray(fields["blocks"])
	fe.Merge("blocks", err)
	l.Blocks = blocks

	if err := fe.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// ToDocument splits the legacy level into a two-board stage document. Board 0
// takes player1/goal1, board 1 takes player2/goal2, and both share the
// dimensions. Blocks are copied in order.
func (l *Legacy) ToDocument() (*stage.Document, error) {
	boards := make([]json.RawMessage, 0, 2)
	for _, half := range []struct {
		player *board.PlayerDocument
		goal   []int
	}{
		{l.Player1, l.Goal1},
		{l.Player2, l.Goal2},
	} {
		raw, err := json.Marshal(board.Document{
			Dimensions: l.Dimensions,
			Player:     half.player,
			Goal:       half.goal,
		})
		if err != nil {
			return nil, fmt.Errorf("encoding board %d: %w", len(boards), err)
		}
		boards = append(boards, raw)
	}

	blocks := l.Blocks
	if blocks == nil {
		blocks = []json.RawMessage{}
	}

	return &stage.Document{Boards: boards, Blocks: blocks}, nil
}

// ToStage converts and validates the legacy level. Validation failures use
// stage paths ("boards[1].goal"), since that is the shape being checked.
func (l *Legacy) ToStage() (*stage.Stage, error) {
	doc, err := l.ToDocument()
	if err != nil {
		return nil, err
	}
	return stage.Parse(doc)
}
