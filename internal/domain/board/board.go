// Package board defines the Board entity: one half of a stage's playfield,
// holding its grid dimensions, the player placed on it, and the goal cell.
package board

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

// Point is a cell coordinate on a board grid.
type Point struct {
	X int
	Y int
}

// Size is a board's grid size in cells.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies inside the grid.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Player is the controllable piece on a board.
type Player struct {
	Position Point
	Color    Color
}

// Board is a validated board entity.
type Board struct {
	Dimensions Size
	Player     Player
	Goal       Point
}

// Document is the wire representation of a board:
//
//	{"dimensions": [w, h], "player": {"position": [x, y], "color": [r, g, b]}, "goal": [x, y]}
type Document struct {
	Dimensions []int           `json:"dimensions"`
	Player     *PlayerDocument `json:"player"`
	Goal       []int           `json:"goal"`
}

// PlayerDocument is the wire representation of a player.
type PlayerDocument struct {
	Position []int `json:"position"`
	Color    []int `json:"color"`
}

// Decode parses and validates a raw JSON board. Each member is decoded on
// its own, so a mistyped field is reported at its path and the remaining
// fields are still checked. Failures are returned as a
// *domain.ValidationError with paths relative to the board.
func Decode(raw json.RawMessage) (Board, error) {
	fields, err := domain.DecodeFields(raw)
	if err != nil {
		return Board{}, err
	}

	var fe domain.FieldErrors
	doc := Document{
		Dimensions: domain.DecodeInts(&fe, "dimensions", fields["dimensions"]),
		Player:     DecodePlayer(&fe, "player", fields["player"]),
		Goal:       domain.DecodeInts(&fe, "goal", fields["goal"]),
	}
	return parse(&fe, &doc)
}

// DecodePlayer decodes a raw player member, recording type failures under
// path. It returns nil when the member is absent or not an object.
func DecodePlayer(fe *domain.FieldErrors, path string, raw json.RawMessage) *PlayerDocument {
	if domain.Absent(raw) {
		return nil
	}
	fields, err := domain.DecodeFields(raw)
	if err != nil {
		fe.Merge(path, err)
		return nil
	}
	return &PlayerDocument{
		Position: domain.DecodeInts(fe, domain.JoinPath(path, "position"), fields["position"]),
		Color:    domain.DecodeInts(fe, domain.JoinPath(path, "color"), fields["color"]),
	}
}

// Parse validates a board document and converts it into a Board.
func Parse(doc *Document) (Board, error) {
	var fe domain.FieldErrors
	return parse(&fe, doc)
}

func parse(fe *domain.FieldErrors, doc *Document) (Board, error) {
	var b Board

	dimsOK := domain.CheckTuple(fe, "dimensions", doc.Dimensions, 2)
	if dimsOK {
		b.Dimensions = Size{W: doc.Dimensions[0], H: doc.Dimensions[1]}
		if b.Dimensions.W <= 0 {
			fe.Add("dimensions[0]", fmt.Sprintf("must be positive, got %d", b.Dimensions.W))
			dimsOK = false
		}
		if b.Dimensions.H <= 0 {
			fe.Add("dimensions[1]", fmt.Sprintf("must be positive, got %d", b.Dimensions.H))
			dimsOK = false
		}
	}

	switch {
	case doc.Player != nil:
		player, ok := parsePlayer(fe, "player", doc.Player)
		b.Player = player
		if ok && dimsOK && !b.Dimensions.Contains(player.Position) {
			fe.Add("player.position", outside(player.Position, b.Dimensions))
		}
	case !fe.Failed("player"):
		fe.Add("player", domain.MsgRequired)
	}

	if domain.CheckTuple(fe, "goal", doc.Goal, 2) {
		b.Goal = Point{X: doc.Goal[0], Y: doc.Goal[1]}
		if dimsOK && !b.Dimensions.Contains(b.Goal) {
			fe.Add("goal", outside(b.Goal, b.Dimensions))
		}
	}

	if err := fe.Err(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Document converts the board back into its wire representation.
func (b *Board) Document() Document {
	return Document{
		Dimensions: []int{b.Dimensions.W, b.Dimensions.H},
		Player:     b.Player.Document(),
		Goal:       []int{b.Goal.X, b.Goal.Y},
	}
}

// Document converts the player back into its wire representation.
func (p Player) Document() *PlayerDocument {
	return &PlayerDocument{
		Position: []int{p.Position.X, p.Position.Y},
		Color:    p.Color.Ints(),
	}
}

// Ints returns the color as a [r, g, b] slice.
func (c Color) Ints() []int {
	return []int{int(c.R), int(c.G), int(c.B)}
}

func parsePlayer(fe *domain.FieldErrors, path string, doc *PlayerDocument) (Player, bool) {
	var p Player

	posPath := domain.JoinPath(path, "position")
	ok := domain.CheckTuple(fe, posPath, doc.Position, 2)
	if ok {
		p.Position = Point{X: doc.Position[0], Y: doc.Position[1]}
	}

	color, colorOK := CheckColor(fe, domain.JoinPath(path, "color"), doc.Color)
	p.Color = color

	return p, ok && colorOK
}

// ParseColor validates an [r, g, b] triple with channels in 0-255. Failure
// paths are relative to the color itself ("" or "[i]").
func ParseColor(vals []int) (Color, error) {
	var fe domain.FieldErrors
	color, _ := CheckColor(&fe, "", vals)
	if err := fe.Err(); err != nil {
		return Color{}, err
	}
	return color, nil
}

// CheckColor validates an [r, g, b] triple, recording failures under path.
// It reports whether the color is usable.
func CheckColor(fe *domain.FieldErrors, path string, vals []int) (Color, bool) {
	if !domain.CheckTuple(fe, path, vals, 3) {
		return Color{}, false
	}
	ok := true
	for i, v := range vals {
		if !domain.CheckRange(fe, domain.Index(path, i), v, 0, 255) {
			ok = false
		}
	}
	if !ok {
		return Color{}, false
	}
	return Color{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}, true
}

func outside(p Point, s Size) string {
	return fmt.Sprintf("(%d, %d) is outside the %dx%d board", p.X, p.Y, s.W, s.H)
}
