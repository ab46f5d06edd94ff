// Package canvas provides the drawing surface used by the render loop: an
// off-screen gg raster addressed by an element identifier. It implements
// [domain.DrawingContext] and can encode its current contents as PNG or BMP.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"

	"github.com/jsamuelsen11/twinboard/internal/domain"
)

// Compile-time interface check.
var _ domain.DrawingContext = (*Surface)(nil)

// Format is an image encoding supported by [Surface.Snapshot].
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported encodings.
var ErrUnknownFormat = errors.New("unknown image format")

// ErrUnknownFillStyle is returned by SetFillStyle for styles that are neither
// a CSS color name nor a hex color.
var ErrUnknownFillStyle = errors.New("unknown fill style")

// ParseFormat resolves a format name. The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatBMP {
		return "image/bmp"
	}
	return "image/png"
}

// Surface is a mutex-guarded gg context. Every method is safe for concurrent
// use; use [Surface.Draw] to keep a whole frame atomic with respect to
// snapshots.
type Surface struct {
	mu  sync.Mutex
	id  string
	dc  *gg.Context
	pen pen
}

// New allocates a transparent surface of the given size in pixels.
func New(elementID string, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %q: invalid size %dx%d", elementID, width, height)
	}
	dc := gg.NewContext(width, height)
	return &Surface{id: elementID, dc: dc, pen: pen{dc: dc}}, nil
}

// ElementID returns the identifier the surface was created with.
func (s *Surface) ElementID() string { return s.id }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Draw runs fn with the surface locked. The context passed to fn must not be
// retained after fn returns.
func (s *Surface) Draw(fn func(dc domain.DrawingContext) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.pen)
}

// ClearRect resets the given rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pen.ClearRect(x, y, w, h)
}

// SetFillStyle sets the color used by FillRect. Accepts CSS color names
// ("blue", "rebeccapurple") and hex colors ("#00f", "#0000ff").
func (s *Surface) SetFillStyle(style string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pen.SetFillStyle(style)
}

// FillRect fills the given rectangle with the current fill style.
func (s *Surface) FillRect(x, y, w, h float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pen.FillRect(x, y, w, h)
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flushing canvas %q: %w", s.id, err)
	}
	return s.dc.Image(), nil
}

// Snapshot encodes the current pixels to w.
func (s *Surface) Snapshot(w io.Writer, format Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flushing canvas %q: %w", s.id, err)
	}

	switch format {
	case FormatPNG, "":
		return s.dc.EncodePNG(w)
	case FormatBMP:
		return bmp.Encode(w, s.dc.Image())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Close releases the gg context.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Close()
}

// pen performs the drawing calls without locking.
type pen struct {
	dc *gg.Context
}

func (p *pen) ClearRect(x, y, w, h float64) {
	x0, y0 := clamp(x, p.dc.Width()), clamp(y, p.dc.Height())
	x1, y1 := clamp(x+w, p.dc.Width()), clamp(y+h, p.dc.Height())

	if x0 == 0 && y0 == 0 && x1 == p.dc.Width() && y1 == p.dc.Height() {
		p.dc.Clear()
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			p.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (p *pen) SetFillStyle(style string) error {
	c, err := parseFillStyle(style)
	if err != nil {
		return err
	}
	p.dc.SetColor(c)
	return nil
}

func (p *pen) FillRect(x, y, w, h float64) error {
	p.dc.DrawRectangle(x, y, w, h)
	if err := p.dc.Fill(); err != nil {
		return fmt.Errorf("filling rect (%g, %g, %g, %g): %w", x, y, w, h, err)
	}
	return nil
}

func parseFillStyle(style string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(style))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if isHexColor(name) {
		return gg.Hex(name).Color(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFillStyle, style)
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// clamp converts a coordinate to a pixel index in [0, limit].
func clamp(v float64, limit int) int {
	switch {
	case v <= 0:
		return 0
	case v >= float64(limit):
		return limit
	default:
		return int(math.Round(v))
	}
}
