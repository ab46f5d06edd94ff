package block

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/twinboard/internal/domain"
	"github.com/jsamuelsen11/twinboard/internal/domain/board"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	raw := `{"movable": true, "orientation": 2, "color": [10, 20, 30], "segments": [[0, 1, 0, 0], [1, 1, 3, 1]]}`

	b, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !b.Movable {
		t.Error("Movable = false, want true")
	}
	if b.Orientation != OrientationVertical {
		t.Errorf("Orientation = %v, want %v", b.Orientation, OrientationVertical)
	}
	if b.Color != (board.Color{R: 10, G: 20, B: 30}) {
		t.Errorf("Color = %+v", b.Color)
	}
	want := []Segment{
		{Position: board.Point{X: 0, Y: 1}, Shape: ShapeFull, Side: SideLeft},
		{Position: board.Point{X: 1, Y: 1}, Shape: ShapeBottomLeft, Side: SideRight},
	}
	if len(b.Segments) != len(want) {
		t.Fatalf("len(Segments) = %d, want %d", len(b.Segments), len(want))
	}
	for i := range want {
		if b.Segments[i] != want[i] {
			t.Errorf("Segments[%d] = %+v, want %+v", i, b.Segments[i], want[i])
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "missing movable", raw: `{"orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 0, 0]]}`, field: "movable"},
		{name: "missing orientation", raw: `{"movable": false, "color": [0, 0, 0], "segments": [[0, 0, 0, 0]]}`, field: "orientation"},
		{name: "bad orientation", raw: `{"movable": false, "orientation": 3, "color": [0, 0, 0], "segments": [[0, 0, 0, 0]]}`, field: "orientation"},
		{name: "bad color channel", raw: `{"movable": false, "orientation": 0, "color": [0, -1, 0], "segments": [[0, 0, 0, 0]]}`, field: "color[1]"},
		{name: "missing segments", raw: `{"movable": false, "orientation": 0, "color": [0, 0, 0]}`, field: "segments"},
		{name: "empty segments", raw: `{"movable": false, "orientation": 0, "color": [0, 0, 0], "segments": []}`, field: "segments"},
		{name: "short segment", raw: `{"movable": false, "orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 0, 0], [0, 0, 0]]}`, field: "segments[1]"},
		{name: "bad shape", raw: `{"movable": false, "orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 5, 0]]}`, field: "segments[0][2]"},
		{name: "bad board", raw: `{"movable": false, "orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 0, 2]]}`, field: "segments[0][3]"},
		{name: "not an object", raw: `"block"`, field: ""},
		{name: "mistyped movable", raw: `{"movable": "yes", "orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 0, 0]]}`, field: "movable"},
		{name: "fractional orientation", raw: `{"movable": true, "orientation": 0.5, "color": [0, 0, 0], "segments": [[0, 0, 0, 0]]}`, field: "orientation"},
		{name: "segments not an array", raw: `{"movable": true, "orientation": 0, "color": [0, 0, 0], "segments": "none"}`, field: "segments"},
		{name: "non-integer segment element", raw: `{"movable": true, "orientation": 0, "color": [0, 0, 0], "segments": [[0, 0, 0, 0], [1, 0, "full", 0]]}`, field: "segments[1][2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.raw))
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestDecode_MistypedFieldKeepsOtherFailures(t *testing.T) {
	t.Parallel()

	raw := `{"movable": "yes", "orientation": 7, "color": [0, 0, 0], "segments": [[0, 0, 1.5, 0], [0, 0, 9, 0]]}`
	_, err := Decode([]byte(raw))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	want := map[string]string{
		"movable":        "must be a boolean, got string",
		"orientation":    "invalid: 7",
		"segments[0][2]": "must be an integer, got number 1.5",
		"segments[1][2]": "invalid shape: 9",
	}
	if len(verr.Fields) != len(want) {
		t.Errorf("Fields = %v, want exactly %v", verr.Fields, want)
	}
	for path, msg := range want {
		if verr.Fields[path] != msg {
			t.Errorf("Fields[%q] = %q, want %q", path, verr.Fields[path], msg)
		}
	}
}

func TestBlock_DocumentRoundTrip(t *testing.T) {
	t.Parallel()

	raw := `{"movable": false, "orientation": 1, "color": [255, 0, 128], "segments": [[2, 3, 4, 1]]}`
	b, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	doc := b.Document()
	again, err := Parse(&doc)
	if err != nil {
		t.Fatalf("Parse(Document()) error = %v", err)
	}
	if again.Movable != b.Movable || again.Orientation != b.Orientation || again.Color != b.Color {
		t.Errorf("round trip = %+v, want %+v", again, b)
	}
	if len(again.Segments) != 1 || again.Segments[0] != b.Segments[0] {
		t.Errorf("Segments = %+v, want %+v", again.Segments, b.Segments)
	}
}

func TestShape_IsValid(t *testing.T) {
	t.Parallel()

	for s := ShapeFull; s <= ShapeBottomRight; s++ {
		if !s.IsValid() {
			t.Errorf("Shape(%d).IsValid() = false, want true", s)
		}
	}
	for _, s := range []Shape{-1, 5} {
		if s.IsValid() {
			t.Errorf("Shape(%d).IsValid() = true, want false", s)
		}
	}
}
