package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Scale is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size picked by the element itself
	UnitPixel               // Absolute pixels
	UnitWeight              // Share of the space left after fixed siblings
	UnitPercent             // Percentage of the parent's size on the same axis
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPixel:
		return "pixel"
	case UnitWeight:
		return "weight"
	case UnitPercent:
		return "percent"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Scale is a parsed size: a magnitude and its unit.
// The zero value is Auto.
type Scale struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Scale that is resolved by the element it belongs to.
func Auto() Scale {
	return Scale{Unit: UnitAuto}
}

// Pixel returns a Scale of n pixels.
func Pixel(n int) Scale {
	return Scale{Amount: float64(n), Unit: UnitPixel}
}

// Weight returns a Scale that takes w shares of the remaining space.
func Weight(w float64) Scale {
	return Scale{Amount: w, Unit: UnitWeight}
}

// Percent returns a Scale of p percent of the parent's size (0-100 scale).
func Percent(p float64) Scale {
	return Scale{Amount: p, Unit: UnitPercent}
}

// IsAuto returns true if the scale has not been specified.
func (s Scale) IsAuto() bool {
	return s.Unit == UnitAuto
}

// Or returns fallback when s is auto, and s otherwise.
func (s Scale) Or(fallback Scale) Scale {
	if s.IsAuto() {
		return fallback
	}
	return s
}

// Resolve computes the pixel size for fixed units given the available space.
// Weights and auto return the fallback.
func (s Scale) Resolve(available, fallback int) int {
	switch s.Unit {
	case UnitPixel:
		return int(math.Round(s.Amount))
	case UnitPercent:
		return int(math.Round(float64(available) * s.Amount / 100.0))
	default:
		return fallback
	}
}

// Validate reports an error when the magnitude is negative or not a number.
func (s Scale) Validate() error {
	if math.IsNaN(s.Amount) || math.IsInf(s.Amount, 0) {
		return fmt.Errorf("scale %s is not a finite number", s)
	}
	if s.Amount < 0 {
		return fmt.Errorf("scale %s must not be negative", s)
	}
	return nil
}

// String formats the scale in the grammar accepted by ParseScale.
func (s Scale) String() string {
	n := strconv.FormatFloat(s.Amount, 'f', -1, 64)
	switch s.Unit {
	case UnitPixel:
		return n
	case UnitWeight:
		return n + "w"
	case UnitPercent:
		return n + "%"
	default:
		return "auto"
	}
}

// ParseScale parses the size grammar: "<n>" or "<n>px" for pixels, "<n>%"
// for percentages, "<n>w" for weights, and "auto" or "" for auto.
// Negative magnitudes are rejected.
func ParseScale(raw string) (Scale, error) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.EqualFold(text, "auto") {
		return Auto(), nil
	}

	unit := UnitPixel
	switch {
	case strings.HasSuffix(text, "%"):
		unit = UnitPercent
		text = strings.TrimSuffix(text, "%")
	case strings.HasSuffix(text, "w"):
		unit = UnitWeight
		text = strings.TrimSuffix(text, "w")
	case strings.HasSuffix(text, "px"):
		text = strings.TrimSuffix(text, "px")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Scale{}, fmt.Errorf("invalid scale %q", raw)
	}
	s := Scale{Amount: amount, Unit: unit}
	if err := s.Validate(); err != nil {
		return Scale{}, err
	}
	return s, nil
}

// ParseScaleValue parses a decoded configuration value: an integer or float
// is taken as pixels, a string goes through ParseScale, and nil is auto.
func ParseScaleValue(raw any) (Scale, error) {
	switch v := raw.(type) {
	case nil:
		return Auto(), nil
	case Scale:
		return v, v.Validate()
	case int:
		s := Pixel(v)
		return s, s.Validate()
	case int64:
		s := Pixel(int(v))
		return s, s.Validate()
	case float64:
		s := Scale{Amount: v, Unit: UnitPixel}
		return s, s.Validate()
	case string:
		return ParseScale(v)
	default:
		return Scale{}, fmt.Errorf("unsupported scale value %v (%T)", raw, raw)
	}
}
