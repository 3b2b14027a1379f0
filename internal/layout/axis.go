package layout

import "fmt"

// Axis is the direction in which a container places its children.
type Axis uint8

const (
	Vertical   Axis = iota // Children stacked top-to-bottom
	Horizontal             // Children placed left-to-right
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// size returns the extent of r along the axis.
func (a Axis) size(r Rect) int {
	if a == Horizontal {
		return r.Width
	}
	return r.Height
}

// slot carves the part of area covered by span along the axis; the other axis
// is kept whole.
func (a Axis) slot(area Rect, span Span) Rect {
	if a == Horizontal {
		return Rect{X: area.X + span.Start, Y: area.Y, Width: span.Size, Height: area.Height}
	}
	return Rect{X: area.X, Y: area.Y + span.Start, Width: area.Width, Height: span.Size}
}
