// Package block defines the Block entity: a colored piece made of one or
// more segments that may span both boards of a stage.
package block

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/board"
)

// Segment is one cell-sized part of a block.
type Segment struct {
	Position board.Point
	Shape    Shape
	Side     Side
}

// Block is a validated block entity.
type Block struct {
	Movable     bool
	Orientation Orientation
	Color       board.Color
	Segments    []Segment
}

// Document is the wire representation of a block. Each segment is encoded as
// a 4-tuple [x, y, shape, board]:
//
//	{"movable": true, "orientation": 0, "color": [r, g, b], "segments": [[0, 0, 0, 1]]}
type Document struct {
	Movable     *bool   `json:"movable"`
	Orientation *int    `json:"orientation"`
	Color       []int   `json:"color"`
	Segments    [][]int `json:"segments"`
}

// segmentArity is the number of integers in an encoded segment.
const segmentArity = 4

// Decode parses and validates a raw JSON block. Members are decoded one at a
// time so a type failure in one field leaves the others checked. Failures are
// returned as a *domain.ValidationError with paths relative to the block.
func Decode(raw json.RawMessage) (Block, error) {
	fields, err := domain.DecodeFields(raw)
	if err != nil {
		return Block{}, err
	}

	var fe domain.FieldErrors
	doc := Document{
		Movable:     domain.DecodeBool(&fe, "movable", fields["movable"]),
		Orientation: domain.DecodeInt(&fe, "orientation", fields["orientation"]),
		Color:       domain.DecodeInts(&fe, "color", fields["color"]),
		Segments:    domain.DecodeIntTuples(&fe, "segments", fields["segments"]),
	}
	return parse(&fe, &doc)
}

// Parse validates a block document and converts it into a Block.
func Parse(doc *Document) (Block, error) {
	var fe domain.FieldErrors
	return parse(&fe, doc)
}

func parse(fe *domain.FieldErrors, doc *Document) (Block, error) {
	var b Block

	switch {
	case doc.Movable != nil:
		b.Movable = *doc.Movable
	case !fe.Failed("movable"):
		fe.Add("movable", domain.MsgRequired)
	}

	switch {
	case doc.Orientation == nil:
		if !fe.Failed("orientation") {
			fe.Add("orientation", domain.MsgRequired)
		}
	case !Orientation(*doc.Orientation).IsValid():
		fe.Add("orientation", fmt.Sprintf("invalid: %d", *doc.Orientation))
	default:
		b.Orientation = Orientation(*doc.Orientation)
	}

	b.Color, _ = board.CheckColor(fe, "color", doc.Color)

	switch {
	case doc.Segments == nil:
		if !fe.Failed("segments") {
			fe.Add("segments", domain.MsgRequired)
		}
	case len(doc.Segments) == 0:
		fe.Add("segments", "must contain at least one segment")
	default:
		b.Segments = make([]Segment, 0, len(doc.Segments))
		for i, raw := range doc.Segments {
			seg, ok := parseSegment(fe, domain.Index("segments", i), raw)
			if ok {
				b.Segments = append(b.Segments, seg)
			}
		}
	}

	if err := fe.Err(); err != nil {
		return Block{}, err
	}
	return b, nil
}

func parseSegment(fe *domain.FieldErrors, path string, vals []int) (Segment, bool) {
	if !domain.CheckTuple(fe, path, vals, segmentArity) {
		return Segment{}, false
	}

	ok := true
	if shape := Shape(vals[2]); !shape.IsValid() {
		fe.Add(path+"[2]", fmt.Sprintf("invalid shape: %d", vals[2]))
		ok = false
	}
	if side := Side(vals[3]); !side.IsValid() {
		fe.Add(path+"[3]", fmt.Sprintf("invalid board: %d", vals[3]))
		ok = false
	}

	return Segment{
		Position: board.Point{X: vals[0], Y: vals[1]},
		Shape:    Shape(vals[2]),
		Side:     Side(vals[3]),
	}, ok
}

// Document converts the block back into its wire representation.
func (b *Block) Document() Document {
	movable := b.Movable
	orientation := int(b.Orientation)

	segments := make([][]int, len(b.Segments))
	for i, s := range b.Segments {
		segments[i] = []int{s.Position.X, s.Position.Y, int(s.Shape), int(s.Side)}
	}

	return Document{
		Movable:     &movable,
		Orientation: &orientation,
		Color:       b.Color.Ints(),
		Segments:    segments,
	}
}
