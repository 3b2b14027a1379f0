// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexui

import "github.com/grindlemire/flexui/internal/layout"

// Scale is a parsed size: pixels, weight, percentage or auto.
type Scale = layout.Scale

// Unit specifies how a Scale is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPixel   = layout.UnitPixel
	UnitWeight  = layout.UnitWeight
	UnitPercent = layout.UnitPercent
)

// Padding holds the scales of the four sides of an element.
type Padding = layout.Padding

// Rect represents a rectangle with position and dimensions in pixels.
type Rect = layout.Rect

// Direction specifies the axis a flexible container places its children on.
type Direction = layout.Axis

const (
	// Column places children top to bottom. It is the default.
	Column = layout.Vertical
	// Row places children left to right.
	Row = layout.Horizontal
)

// Item is the parsed placement of an element inside its container.
type Item = layout.Item

// Auto creates a Scale resolved by the element itself.
func Auto() Scale {
	return layout.Auto()
}

// Pixels creates a Scale of n pixels.
func Pixels(n int) Scale {
	return layout.Pixel(n)
}

// Weight creates a Scale of w weight units.
func Weight(w float64) Scale {
	return layout.Weight(w)
}

// Percent creates a Scale of p percent of the parent.
func Percent(p float64) Scale {
	return layout.Percent(p)
}

// ParseScale parses "<n>", "<n>px", "<n>%", "<n>w" or "auto".
func ParseScale(s string) (Scale, error) {
	return layout.ParseScale(s)
}

// ParseScaleValue parses a decoded configuration value: numbers are pixels,
// strings use the ParseScale grammar and nil is auto.
func ParseScaleValue(v any) (Scale, error) {
	return layout.ParseScaleValue(v)
}

// MustScale is like ParseScale but panics on malformed input.
func MustScale(s string) Scale {
	v, err := layout.ParseScale(s)
	if err != nil {
		panic(err)
	}
	return v
}

// PadAll creates Padding with the same scale on all sides.
func PadAll(s Scale) Padding {
	return layout.PadAll(s)
}

// PadSymmetric creates Padding with vertical and horizontal scales.
func PadSymmetric(v, h Scale) Padding {
	return layout.PadSymmetric(v, h)
}

// PadTRBL creates Padding in top, right, bottom, left order.
func PadTRBL(t, r, b, l Scale) Padding {
	return layout.PadTRBL(t, r, b, l)
}

// ParsePadding parses a number, a scale string, a [v, h] or [t, r, b, l]
// list, or a map of sides.
func ParsePadding(v any) (Padding, error) {
	return layout.ParsePadding(v)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
