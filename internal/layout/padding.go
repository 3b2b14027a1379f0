package layout

import "fmt"

// Padding holds the scales of the four sides of a box. Auto sides are zero.
type Padding struct {
	Top, Right, Bottom, Left Scale
}

// PadAll creates Padding with the same scale on all sides.
func PadAll(s Scale) Padding {
	return Padding{Top: s, Right: s, Bottom: s, Left: s}
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal
// (left/right) scales.
func PadSymmetric(v, h Scale) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// PadTRBL creates Padding following CSS order: Top, Right, Bottom, Left.
func PadTRBL(t, r, b, l Scale) Padding {
	return Padding{Top: t, Right: r, Bottom: b, Left: l}
}

// IsZero returns true if no side adds any space.
func (p Padding) IsZero() bool {
	return isEmptySide(p.Top) && isEmptySide(p.Right) && isEmptySide(p.Bottom) && isEmptySide(p.Left)
}

func isEmptySide(s Scale) bool {
	return s.IsAuto() || s.Amount == 0
}

// Validate reports the first side with an invalid magnitude.
func (p Padding) Validate() error {
	for _, side := range []struct {
		name  string
		scale Scale
	}{{"top", p.Top}, {"right", p.Right}, {"bottom", p.Bottom}, {"left", p.Left}} {
		if err := side.scale.Validate(); err != nil {
			return fmt.Errorf("padding %s: %w", side.name, err)
		}
	}
	return nil
}

// ParsePadding parses a decoded configuration value. Accepted forms are a
// single scale (number or string) for all sides, a two element list
// [vertical, horizontal], a four element list [top, right, bottom, left], or
// a map with any of the keys top, right, bottom and left.
func ParsePadding(raw any) (Padding, error) {
	switch v := raw.(type) {
	case nil:
		return Padding{}, nil
	case Padding:
		return v, v.Validate()
	case []any:
		scales := make([]Scale, len(v))
		for i, item := range v {
			s, err := ParseScaleValue(item)
			if err != nil {
				return Padding{}, fmt.Errorf("padding[%d]: %w", i, err)
			}
			scales[i] = s
		}
		switch len(scales) {
		case 2:
			return PadSymmetric(scales[0], scales[1]), nil
		case 4:
			return PadTRBL(scales[0], scales[1], scales[2], scales[3]), nil
		default:
			return Padding{}, fmt.Errorf("padding list needs 2 or 4 values, got %d", len(scales))
		}
	case map[string]any:
		var p Padding
		for key, item := range v {
			s, err := ParseScaleValue(item)
			if err != nil {
				return Padding{}, fmt.Errorf("padding %s: %w", key, err)
			}
			switch key {
			case "top":
				p.Top = s
			case "right":
				p.Right = s
			case "bottom":
				p.Bottom = s
			case "left":
				p.Left = s
			default:
				return Padding{}, fmt.Errorf("unknown padding side %q", key)
			}
		}
		return p, nil
	default:
		s, err := ParseScaleValue(raw)
		if err != nil {
			return Padding{}, err
		}
		return PadAll(s), nil
	}
}

// ApplyPadding resolves padding inside area for content of the given width and
// height. Each axis is distributed as [start padding, content, end padding]
// over the area's size, so weighted padding shares the space left by pixel and
// percentage parts with weighted content. Auto content counts as 1w and auto
// padding as zero.
func ApplyPadding(area Rect, width, height Scale, pad Padding) Rect {
	h := Distribute([]Segment{
		{Size: sideScale(pad.Left)},
		{Size: width.Or(Weight(1))},
		{Size: sideScale(pad.Right)},
	}, area.Width, Pixel(0))
	v := Distribute([]Segment{
		{Size: sideScale(pad.Top)},
		{Size: height.Or(Weight(1))},
		{Size: sideScale(pad.Bottom)},
	}, area.Height, Pixel(0))

	return Rect{
		X:      area.X + h[1].Start,
		Y:      area.Y + v[1].Start,
		Width:  h[1].Size,
		Height: v[1].Size,
	}
}

func sideScale(s Scale) Scale {
	return s.Or(Pixel(0))
}

// fixedSides returns the pixel space taken by the non-weighted padding on one
// axis, with percentages resolved against available.
func fixedSides(pad Padding, axis Axis, available int) int {
	start, end := pad.Left, pad.Right
	if axis == Vertical {
		start, end = pad.Top, pad.Bottom
	}
	return start.Resolve(available, 0) + end.Resolve(available, 0)
}

// pinPercentSides converts percentage sides on the axis into pixels against
// available, so the slot and the padding inside it agree on their size.
func pinPercentSides(pad Padding, axis Axis, available int) Padding {
	pin := func(s Scale) Scale {
		if s.Unit == UnitPercent {
			return Pixel(s.Resolve(available, 0))
		}
		return s
	}
	if axis == Horizontal {
		pad.Left, pad.Right = pin(pad.Left), pin(pad.Right)
	} else {
		pad.Top, pad.Bottom = pin(pad.Top), pin(pad.Bottom)
	}
	return pad
}
