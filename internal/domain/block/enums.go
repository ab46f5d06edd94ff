package block

// Orientation restricts the directions a block may be pushed.
type Orientation int

const (
	OrientationBoth       Orientation = 0
	OrientationHorizontal Orientation = 1
	OrientationVertical   Orientation = 2
)

// IsValid returns true if the orientation is one of the defined constants.
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationBoth, OrientationHorizontal, OrientationVertical:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case OrientationBoth:
		return "both"
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Shape is the footprint of a segment within its cell. The corner shapes are
// right triangles named after the corner they occupy.
type Shape int

const (
	ShapeFull        Shape = 0
	ShapeTopRight    Shape = 1
	ShapeTopLeft     Shape = 2
	ShapeBottomLeft  Shape = 3
	ShapeBottomRight Shape = 4
)

// IsValid returns true if the shape is one of the defined constants.
func (s Shape) IsValid() bool {
	return s >= ShapeFull && s <= ShapeBottomRight
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeFull:
		return "full"
	case ShapeTopRight:
		return "top_right"
	case ShapeTopLeft:
		return "top_left"
	case ShapeBottomLeft:
		return "bottom_left"
	case ShapeBottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}

// Side selects which of the two boards a segment sits on.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// IsValid returns true if the side is one of the defined constants.
func (s Side) IsValid() bool {
	return s == SideLeft || s == SideRight
}

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
