package flexui

import (
	"fmt"
	"strings"
)

// DropdownDisableMode decides when a dropdown disables itself based on its
// items.
type DropdownDisableMode uint8

const (
	// DropdownDisableEmpty disables the dropdown when it has no items. It is
	// the default.
	DropdownDisableEmpty DropdownDisableMode = iota
	// DropdownDisableSingle disables the dropdown with one item or fewer.
	DropdownDisableSingle
	// DropdownDisableNever keeps the dropdown enabled.
	DropdownDisableNever
)

func (m DropdownDisableMode) String() string {
	switch m {
	case DropdownDisableEmpty:
		return "empty"
	case DropdownDisableSingle:
		return "single"
	case DropdownDisableNever:
		return "never"
	default:
		return fmt.Sprintf("DropdownDisableMode(%d)", int(m))
	}
}

// ParseDropdownDisableMode parses "empty", "single" or "never".
func ParseDropdownDisableMode(s string) (DropdownDisableMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return DropdownDisableEmpty, nil
	case "single":
		return DropdownDisableSingle, nil
	case "never":
		return DropdownDisableNever, nil
	default:
		return DropdownDisableEmpty, fmt.Errorf("unknown dropdown disable mode %q", s)
	}
}

// DropdownParams configures a dropdown.
type DropdownParams struct {
	ElementParams
	Items Bindable[[]string]
	// SelectedIndex receives the user's choice when bound with BindTwoWay.
	SelectedIndex Bindable[int]
	OnChange      func(index int)
	AutoDisable   DropdownDisableMode
	// DisabledMessage replaces the items while the dropdown is disabled.
	DisabledMessage string
}

type dropdownControl struct {
	*control[*DropdownWidget]
	items           []string
	selected        int
	userDisabled    bool
	autoDisable     DropdownDisableMode
	disabledMessage string
}

// Dropdown creates a list of items of which one is selected.
func Dropdown(params DropdownParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		const op = "flexui.Dropdown"
		if params.AutoDisable > DropdownDisableNever {
			return nil, configError(op, "unknown auto disable mode %v", params.AutoDisable)
		}

		// The disabled flag is combined with the auto disable state below.
		element := params.ElementParams
		disabled := element.Disabled
		element.Disabled = Bindable[bool]{}

		desc := &DropdownWidget{}
		c, err := newControl(op, TypeDropdown, desc, parent, out, element, Weight(1), lineHeight)
		if err != nil {
			return nil, err
		}
		d := &dropdownControl{
			control:         c,
			autoDisable:     params.AutoDisable,
			disabledMessage: params.DisabledMessage,
		}
		d.apply(desc)

		b := out.Binder
		AddBinding(b, desc, params.Items, func(w *DropdownWidget, v []string) {
			d.items = v
			d.apply(w)
		})
		AddBinding(b, desc, disabled, func(w *DropdownWidget, v bool) {
			d.userDisabled = v
			d.apply(w)
		})
		AddTwoWayBinding(b, desc, params.SelectedIndex,
			func(w *DropdownWidget, v int) {
				d.selected = v
				d.apply(w)
			},
			func(w *DropdownWidget, fn func(int)) { w.OnChange = fn },
			params.OnChange,
		)
		return d, nil
	}
}

func (d *dropdownControl) autoDisabled() bool {
	switch d.autoDisable {
	case DropdownDisableEmpty:
		return len(d.items) == 0
	case DropdownDisableSingle:
		return len(d.items) <= 1
	default:
		return false
	}
}

// apply writes the items, selection and disabled state into w.
func (d *dropdownControl) apply(w *DropdownWidget) {
	disabled := d.userDisabled || d.autoDisabled()
	w.IsDisabled = disabled
	if disabled && d.disabledMessage != "" {
		w.Items = []string{d.disabledMessage}
		w.SelectedIndex = 0
		return
	}
	w.Items = d.items
	w.SelectedIndex = d.selected
}
