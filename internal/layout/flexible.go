package layout

// Item is the parsed placement of one child: its size on both axes, its
// padding, pixel bounds, and the offset used by absolute containers.
type Item struct {
	Width, Height Scale
	Padding       Padding

	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	X, Y int
}

func (it Item) main(axis Axis) Scale {
	if axis == Horizontal {
		return it.Width
	}
	return it.Height
}

func (it Item) bounds(axis Axis) (int, int) {
	if axis == Horizontal {
		return it.MinWidth, it.MaxWidth
	}
	return it.MinHeight, it.MaxHeight
}

// Flexible places items one after another along axis inside area.
//
// A pixel-sized item occupies its size plus its non-weighted padding on the
// main axis; percentage and weighted items get their share of the area. The
// item's own padding is then applied inside that slot, with the cross axis
// spanning the whole area. apply receives each item's final content rectangle.
func Flexible(items []Item, area Rect, axis Axis, spacing Scale, apply func(index int, area Rect)) {
	if len(items) == 0 {
		return
	}
	total := axis.size(area)

	segments := make([]Segment, len(items))
	pads := make([]Padding, len(items))
	padded := make([]int, len(items))
	for i, it := range items {
		main := it.main(axis).Or(Weight(1))
		pad := it.Padding
		if main.Unit == UnitPixel {
			pad = pinPercentSides(pad, axis, total)
			padded[i] = fixedSides(pad, axis, total)
			main = Scale{Amount: main.Amount + float64(padded[i]), Unit: UnitPixel}
		}
		minMain, maxMain := it.bounds(axis)
		segments[i] = Segment{Size: main, Min: minMain, Max: maxMain}
		pads[i] = pad
	}

	spans := Distribute(segments, total, spacing)
	cross := Vertical
	if axis == Vertical {
		cross = Horizontal
	}

	for i, it := range items {
		slot := axis.slot(area, spans[i])

		// The slot is already clamped to the item's bounds. Pixel content is
		// whatever the slot holds after its fixed padding; anything else fills it.
		content := Weight(1)
		if it.main(axis).Unit == UnitPixel {
			content = Pixel(max(0, spans[i].Size-padded[i]))
		}
		width, height := it.Width, it.Height
		if axis == Horizontal {
			width = content
		} else {
			height = content
		}

		inner := ApplyPadding(slot, width, height, pads[i])
		minCross, maxCross := it.bounds(cross)
		if cross == Horizontal {
			inner.Width = clamp(inner.Width, minCross, maxCross)
		} else {
			inner.Height = clamp(inner.Height, minCross, maxCross)
		}
		apply(i, inner)
	}
}

// Absolute places each item at its X/Y offset inside area. Pixel sizes are
// taken as-is (plus non-weighted padding), percentages are of the area, and
// auto or weighted sizes stretch to the area's far edge.
func Absolute(items []Item, area Rect, apply func(index int, area Rect)) {
	for i, it := range items {
		pad := pinPercentSides(pinPercentSides(it.Padding, Horizontal, area.Width), Vertical, area.Height)
		slot := Rect{X: area.X + it.X, Y: area.Y + it.Y}
		slot.Width = absoluteSize(it.Width, area.Width, area.Right()-slot.X, fixedSides(pad, Horizontal, area.Width))
		slot.Height = absoluteSize(it.Height, area.Height, area.Bottom()-slot.Y, fixedSides(pad, Vertical, area.Height))

		width, height := it.Width, it.Height
		if width.Unit != UnitPixel {
			width = Weight(1)
		}
		if height.Unit != UnitPixel {
			height = Weight(1)
		}

		inner := ApplyPadding(slot, width, height, pad)
		inner.Width = clamp(inner.Width, it.MinWidth, it.MaxWidth)
		inner.Height = clamp(inner.Height, it.MinHeight, it.MaxHeight)
		apply(i, inner)
	}
}

// absoluteSize resolves one side of an absolute slot. rest is the distance
// from the slot's start to the area's far edge.
func absoluteSize(s Scale, available, rest, padding int) int {
	switch s.Unit {
	case UnitPixel:
		return s.Resolve(available, 0) + padding
	case UnitPercent:
		return s.Resolve(available, 0)
	default:
		return max(0, rest)
	}
}
