// Package loop drives the render loop: a single goroutine that clears the
// drawing surface, draws the moving marker rectangle, and hands the surface
// to the game once per scheduled frame.
package loop

import (
	"errors"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

// Geometry of a frame, in surface pixels.
const (
	ClearWidth  = 854
	ClearHeight = 480
	MarkerY     = 100
	MarkerSize  = 20
)

// MarkerFillStyle is the fill style of the marker rectangle.
const MarkerFillStyle = "blue"

// State is the loop state carried from one frame to the next.
type State struct {
	Frame int64
	X     float64
}

// Renderer draws onto a drawing context. Implemented by the game.
type Renderer interface {
	Render(dc domain.DrawingContext)
}

// Step draws one frame and returns the advanced state. The returned state is
// advanced even when a drawing call fails; the failures are joined into err.
func Step(s State, dc domain.DrawingContext, game Renderer) (State, error) {
	dc.ClearRect(0, 0, ClearWidth, ClearHeight)
	styleErr := dc.SetFillStyle(MarkerFillStyle)

	s.X++
	s.Frame++

	fillErr := dc.FillRect(s.X, MarkerY, MarkerSize, MarkerSize)
	game.Render(dc)

	return s, errors.Join(styleErr, fillErr)
}
