// Package stage defines the Stage entity: the top-level collection of boards
// and blocks that makes up one level.
//
// The schema is expressed as explicit decode/parse functions that return a
// *domain.ValidationError keyed by document path instead of panicking:
//
//	st, err := stage.Decode([]byte(`{"boards": [{}], "blocks": []}`))
//	// err.(*domain.ValidationError).Fields has keys under "boards[0]"
package stage

import (
	"encoding/json"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/block"
	"github.com/jsamuelsen11/twinboard/internal/domain/board"
)

// Field names of the stage document.
const (
	FieldBoards = "boards"
	FieldBlocks = "blocks"
)

// Stage is a validated collection of boards and blocks. Order is preserved
// from the input document.
type Stage struct {
	Boards []board.Board
	Blocks []block.Block
}

// Document is the raw wire form of a stage. Elements are kept undecoded so
// that each one is validated independently and failures carry their index.
// A nil slice means the field was missing or null.
type Document struct {
	Boards []json.RawMessage `json:"boards"`
	Blocks []json.RawMessage `json:"blocks"`
}

// Decode parses raw JSON and validates it against the stage schema.
func Decode(data []byte) (*Stage, error) {
	var fe domain.FieldErrors

	var top map[string]json.RawMessage
	if err := domain.DecodeObject(data, &top); err != nil {
		return nil, err
	}

	var doc Document
	for _, f := range []struct {
		name string
		dst  *[]json.RawMessage
	}{
		{FieldBoards, &doc.Boards},
		{FieldBlocks, &doc.Blocks},
	} {
		elems, present, err := domain.DecodeArray(top[f.name])
		switch {
		case err != nil:
			// Already reported; an empty slice keeps parse from adding "required".
			fe.Merge(f.name, err)
			*f.dst = []json.RawMessage{}
		case present:
			*f.dst = elems
		}
	}

	return parse(&fe, &doc)
}

// Parse validates a stage document. Every element of both sequences is
// checked; the returned error lists all failures, not just the first.
func Parse(doc *Document) (*Stage, error) {
	var fe domain.FieldErrors
	return parse(&fe, doc)
}

func parse(fe *domain.FieldErrors, doc *Document) (*Stage, error) {
	st := &Stage{
		Boards: make([]board.Board, 0, len(doc.Boards)),
		Blocks: make([]block.Block, 0, len(doc.Blocks)),
	}

	if doc.Boards == nil {
		fe.Add(FieldBoards, domain.MsgRequired)
	}
	for i, raw := range doc.Boards {
		b, err := board.Decode(raw)
		if err != nil {
			fe.Merge(domain.Index(FieldBoards, i), err)
			continue
		}
		st.Boards = append(st.Boards, b)
	}

	if doc.Blocks == nil {
		fe.Add(FieldBlocks, domain.MsgRequired)
	}
	for i, raw := range doc.Blocks {
		b, err := block.Decode(raw)
		if err != nil {
			fe.Merge(domain.Index(FieldBlocks, i), err)
			continue
		}
		st.Blocks = append(st.Blocks, b)
	}

	if err := fe.Err(); err != nil {
		return nil, err
	}
	return st, nil
}

// Render draws the stage. It is currently a no-op and makes no calls on dc.
func (s *Stage) Render(_ domain.DrawingContext) {}

// Shape is the typed wire form of a validated stage, used for encoding.
type Shape struct {
	Boards []board.Document `json:"boards"`
	Blocks []block.Document `json:"blocks"`
}

// Shape converts the stage back into its wire representation. Empty
// sequences encode as [] rather than null.
func (s *Stage) Shape() Shape {
	out := Shape{
		Boards: make([]board.Document, len(s.Boards)),
		Blocks: make([]block.Document, len(s.Blocks)),
	}
	for i := range s.Boards {
		out.Boards[i] = s.Boards[i].Document()
	}
	for i := range s.Blocks {
		out.Blocks[i] = s.Blocks[i].Document()
	}
	return out
}

// MarshalJSON encodes the stage in the same structural shape it was decoded from.
func (s *Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Shape())
}
