package layout

import "math"

// Segment is one entry on an axis: a size and optional pixel bounds applied
// after the size is resolved. Max <= 0 means unbounded.
type Segment struct {
	Size     Scale
	Min, Max int
}

// Span is the resolved position (relative to the start of the axis) and size
// of a segment.
type Span struct {
	Start, Size int
}

// Distribute splits total pixels between segments laid out one after another
// with spacing between neighbours.
//
// Pixel and percentage segments (and non-weighted spacing) are fixed; the
// percentage is taken of total. The rest, clamped to zero, is shared between
// weighted segments (auto counts as 1w) and weighted spacing in proportion to
// their weights. Shares are rounded to the nearest pixel and the rounding
// leftover is handed to the last weighted segments so the weighted parts sum
// exactly to the remaining space. Min/max bounds are applied last.
func Distribute(segments []Segment, total int, spacing Scale) []Span {
	spans := make([]Span, len(segments))
	if len(segments) == 0 {
		return spans
	}
	gaps := len(segments) - 1

	fixed := 0
	weights := 0.0
	var weighted []int
	for i, seg := range segments {
		switch seg.Size.Unit {
		case UnitPixel, UnitPercent:
			spans[i].Size = max(0, seg.Size.Resolve(total, 0))
			fixed += spans[i].Size
		default:
			weights += weightOf(seg.Size)
			weighted = append(weighted, i)
		}
	}

	gapSize := 0
	gapWeight := 0.0
	if spacing.Unit == UnitWeight {
		gapWeight = spacing.Amount
		weights += gapWeight * float64(gaps)
	} else {
		gapSize = max(0, spacing.Resolve(total, 0))
		fixed += gapSize * gaps
	}

	remaining := max(0, total-fixed)
	if weights > 0 {
		assigned := 0
		for _, i := range weighted {
			spans[i].Size = share(remaining, weightOf(segments[i].Size), weights)
			assigned += spans[i].Size
		}
		if gapWeight > 0 {
			gapSize = share(remaining, gapWeight, weights)
			assigned += gapSize * gaps
		}
		spreadLeftover(spans, weighted, remaining-assigned)
	}

	for i, seg := range segments {
		spans[i].Size = clamp(spans[i].Size, seg.Min, seg.Max)
	}

	pos := 0
	for i := range spans {
		spans[i].Start = pos
		pos += spans[i].Size + gapSize
	}
	return spans
}

func weightOf(s Scale) float64 {
	if s.Unit == UnitWeight {
		return s.Amount
	}
	return 1
}

func share(remaining int, weight, total float64) int {
	return int(math.Round(float64(remaining) * weight / total))
}

// spreadLeftover hands the rounding difference out one pixel at a time,
// starting from the last weighted segment.
func spreadLeftover(spans []Span, weighted []int, leftover int) {
	for leftover != 0 && len(weighted) > 0 {
		progressed := false
		for k := len(weighted) - 1; k >= 0 && leftover != 0; k-- {
			i := weighted[k]
			if leftover > 0 {
				spans[i].Size++
				leftover--
				progressed = true
			} else if spans[i].Size > 0 {
				spans[i].Size--
				leftover++
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// clamp restricts v to the range [minVal, maxVal]. A maxVal of zero or less
// is unbounded. If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if maxVal > 0 && v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}
