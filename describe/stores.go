package describe

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexui"
)

// Stores holds the named stores of a description. Values are
// *flexui.Store[string], *flexui.Store[int], *flexui.Store[bool] or
// *flexui.Store[[]string], chosen from the declared initial value.
type Stores struct {
	byName map[string]any
	order  []string
}

func newStores(n *yaml.Node) (*Stores, error) {
	s := &Stores{byName: map[string]any{}}
	if n.Kind == 0 || n.Tag == "!!null" {
		return s, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: stores must be a map", n.Line)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		name := key.Value
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("line %d: store %q declared twice", key.Line, name)
		}
		store, err := newStore(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: store %q: %w", key.Line, name, err)
		}
		s.byName[name] = store
		s.order = append(s.order, name)
	}
	return s, nil
}

func newStore(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int":
			var v int
			if err := n.Decode(&v); err != nil {
				return nil, err
			}
			return flexui.NewStore(v), nil
		case "!!bool":
			var v bool
			if err := n.Decode(&v); err != nil {
				return nil, err
			}
			return flexui.NewStore(v), nil
		case "!!str":
			return flexui.NewStore(n.Value), nil
		default:
			return nil, fmt.Errorf("unsupported initial value %q", n.Value)
		}
	case yaml.SequenceNode:
		var items []string
		if err := n.Decode(&items); err != nil {
			return nil, err
		}
		return flexui.NewStore(items), nil
	default:
		return nil, fmt.Errorf("initial value must be a string, number, bool or list of strings")
	}
}

// Get returns the store declared as name.
func (s *Stores) Get(name string) (any, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// Names returns the store names in declaration order.
func (s *Stores) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of stores.
func (s *Stores) Len() int {
	return len(s.order)
}

// Int returns the int store declared as name.
func (s *Stores) Int(name string) (*flexui.Store[int], bool) {
	return storeOf[int](s, name)
}

// Text returns the string store declared as name.
func (s *Stores) Text(name string) (*flexui.Store[string], bool) {
	return storeOf[string](s, name)
}

// Bool returns the bool store declared as name.
func (s *Stores) Bool(name string) (*flexui.Store[bool], bool) {
	return storeOf[bool](s, name)
}

// List returns the string list store declared as name.
func (s *Stores) List(name string) (*flexui.Store[[]string], bool) {
	return storeOf[[]string](s, name)
}

// Display returns the current value of the store declared as name, formatted
// for printing.
func (s *Stores) Display(name string) string {
	switch v := s.byName[name].(type) {
	case *flexui.Store[int]:
		return strconv.Itoa(v.Get())
	case *flexui.Store[bool]:
		return strconv.FormatBool(v.Get())
	case *flexui.Store[string]:
		return strconv.Quote(v.Get())
	case *flexui.Store[[]string]:
		return fmt.Sprintf("%q", v.Get())
	default:
		return ""
	}
}

func storeOf[T any](s *Stores, name string) (*flexui.Store[T], bool) {
	st, ok := s.byName[name].(*flexui.Store[T])
	return st, ok
}
