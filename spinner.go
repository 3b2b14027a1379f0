package flexui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/flexui/internal/debug"
)

// WrapMode decides what a spinner does when a step goes past its bounds.
type WrapMode uint8

const (
	// WrapModeWrap jumps to the opposite bound. It is the default.
	WrapModeWrap WrapMode = iota
	// WrapModeClamp stops at the bound.
	WrapModeClamp
	// WrapModeClampThenWrap stops at the bound first and wraps on the next
	// step past it.
	WrapModeClampThenWrap
)

func (m WrapMode) String() string {
	switch m {
	case WrapModeWrap:
		return "wrap"
	case WrapModeClamp:
		return "clamp"
	case WrapModeClampThenWrap:
		return "clampThenWrap"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// ParseWrapMode parses "wrap", "clamp" or "clampThenWrap".
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "":
		return WrapModeWrap, nil
	case "clamp":
		return WrapModeClamp, nil
	case "clampthenwrap":
		return WrapModeClampThenWrap, nil
	default:
		return WrapModeWrap, fmt.Errorf("unknown wrap mode %q", s)
	}
}

// SpinnerParams configures a spinner.
type SpinnerParams struct {
	ElementParams
	// Value receives the new value when bound with BindTwoWay. A literal or
	// unset value makes the spinner keep its own value, starting at the
	// literal or 0.
	Value Bindable[int]
	// Minimum is the lowest value, 0 by default.
	Minimum Bindable[int]
	// Maximum is the exclusive upper bound, math.MaxInt32 by default.
	Maximum Bindable[int]
	// Step is the amount added or subtracted per click, 1 by default.
	Step     int
	WrapMode WrapMode
	// Format turns the value into the spinner's text. Defaults to decimal.
	Format func(value int) string
	// OnChange receives the new value and the step that was applied.
	OnChange func(value, adjustment int)
}

type spinnerControl struct {
	*control[*SpinnerWidget]
	value    Bindable[int]
	minimum  Bindable[int]
	maximum  Bindable[int]
	step     int
	wrapMode WrapMode
	onChange func(value, adjustment int)
}

// Spinner creates a control with a value and buttons to step it up and down.
//
// A minimum larger than the maximum fails the build. Equal bounds leave the
// spinner unable to change.
func Spinner(params SpinnerParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		const op = "flexui.Spinner"
		minimum := params.Minimum.Or(0)
		maximum := params.Maximum.Or(math.MaxInt32)
		if lo, hi := Read(minimum), Read(maximum); lo > hi {
			return nil, configError(op, "spinner minimum %d is equal to or larger than maximum %d", lo, hi)
		}
		if params.Step < 0 {
			return nil, configError(op, "step %d must not be negative", params.Step)
		}
		if params.WrapMode > WrapModeClampThenWrap {
			return nil, configError(op, "unknown wrap mode %v", params.WrapMode)
		}

		desc := &SpinnerWidget{}
		c, err := newControl(op, TypeSpinner, desc, parent, out, params.ElementParams, Weight(1), buttonHeight)
		if err != nil {
			return nil, err
		}

		value := params.Value
		if !value.IsStore() {
			value = BindTwoWay(NewStore(Read(value)))
		}
		format := params.Format
		if format == nil {
			format = strconv.Itoa
		}
		step := params.Step
		if step == 0 {
			step = 1
		}

		s := &spinnerControl{
			control:  c,
			value:    value,
			minimum:  minimum,
			maximum:  maximum,
			step:     step,
			wrapMode: params.WrapMode,
			onChange: params.OnChange,
		}
		AddBinding(out.Binder, desc, value, func(w *SpinnerWidget, v int) { w.Text = format(v) })
		desc.OnIncrement = func() { s.adjust(s.step) }
		desc.OnDecrement = func() { s.adjust(-s.step) }
		return s, nil
	}
}

// adjust applies one step and reports the new value.
func (s *spinnerControl) adjust(adjustment int) {
	lo, hi := Read(s.minimum), Read(s.maximum)
	if lo >= hi {
		return
	}
	current := Read(s.value)
	next := nextSpinnerValue(current, adjustment, lo, hi, s.wrapMode)
	if next == current {
		return
	}
	debug.Log("spinner(%s): %d -> %d (%+d)", s.Name(), current, next, adjustment)

	s.value.writeBack(next)
	if s.onChange != nil {
		s.onChange(next, adjustment)
	}
}

// nextSpinnerValue applies adjustment to value within [lo, hi).
func nextSpinnerValue(value, adjustment, lo, hi int, mode WrapMode) int {
	last := hi - 1
	next := value + adjustment
	if next >= lo && next <= last {
		return next
	}

	switch mode {
	case WrapModeClamp:
		return clampInt(next, lo, last)
	case WrapModeClampThenWrap:
		if next > last {
			if value == last {
				return lo
			}
			return last
		}
		if value == lo {
			return last
		}
		return lo
	default:
		if next > last {
			return lo
		}
		return last
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
