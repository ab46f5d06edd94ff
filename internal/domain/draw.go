package domain

// DrawingContext is the subset of a 2D canvas API that game entities draw
// through. Coordinates are logical units with the origin at the top-left.
//
// DrawingContext is defined in the domain layer so that entities can render
// without depending on the concrete surface implementation.
type DrawingContext interface {
	// ClearRect resets every pixel inside the rectangle to transparent.
	ClearRect(x, y, w, h float64)

	// SetFillStyle selects the color used by subsequent FillRect calls.
	// Accepts CSS color names ("blue") and hex notation ("#00f", "#0000ff").
	SetFillStyle(style string) error

	// FillRect paints the rectangle with the current fill style.
	FillRect(x, y, w, h float64) error
}
