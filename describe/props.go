package describe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexui"
)

// props is the property map of one control. Every property has to be taken
// exactly once; finish reports the ones nobody asked for.
type props struct {
	kind  string
	line  int
	nodes map[string]*yaml.Node
	taken map[string]bool
}

func newProps(kind string, n *yaml.Node) (*props, error) {
	p := &props{kind: kind, line: n.Line, nodes: map[string]*yaml.Node{}, taken: map[string]bool{}}
	if n.Tag == "!!null" {
		return p, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s properties must be a map", n.Line, kind)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		p.nodes[n.Content[i].Value] = n.Content[i+1]
	}
	return p, nil
}

// take returns the node of key, or nil when the property is not set.
func (p *props) take(key string) *yaml.Node {
	p.taken[key] = true
	return p.nodes[key]
}

func (p *props) finish() error {
	var unknown []string
	for key := range p.nodes {
		if !p.taken[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("line %d: unknown %s properties: %s", p.line, p.kind, strings.Join(unknown, ", "))
}

func (p *props) errorf(n *yaml.Node, format string, args ...any) error {
	line := p.line
	if n != nil {
		line = n.Line
	}
	return fmt.Errorf("line %d: %s: %s", line, p.kind, fmt.Sprintf(format, args...))
}

// reference returns the store name of a "$name" scalar.
func reference(n *yaml.Node) (string, bool) {
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!str" || !strings.HasPrefix(n.Value, "$") {
		return "", false
	}
	return strings.TrimPrefix(n.Value, "$"), true
}

func (b *builder) store(p *props, n *yaml.Node, name string) (any, error) {
	s, ok := b.stores.Get(name)
	if !ok {
		return nil, p.errorf(n, "unknown store %q", name)
	}
	return s, nil
}

// text resolves a string property. Int, bool and list stores are shown
// formatted.
func (b *builder) text(p *props, key string) (flexui.Bindable[string], error) {
	n := p.take(key)
	if n == nil {
		return flexui.Bindable[string]{}, nil
	}
	name, ok := reference(n)
	if !ok {
		if n.Kind != yaml.ScalarNode {
			return flexui.Bindable[string]{}, p.errorf(n, "%s must be text", key)
		}
		return flexui.Value(n.Value), nil
	}
	s, err := b.store(p, n, name)
	if err != nil {
		return flexui.Bindable[string]{}, err
	}
	switch st := s.(type) {
	case *flexui.Store[string]:
		return flexui.Bind[string](st), nil
	case *flexui.Store[int]:
		return flexui.Bind(flexui.Compute(st, strconv.Itoa)), nil
	case *flexui.Store[bool]:
		return flexui.Bind(flexui.Compute(st, strconv.FormatBool)), nil
	case *flexui.Store[[]string]:
		return flexui.Bind(flexui.Compute(st, func(v []string) string { return strings.Join(v, ", ") })), nil
	default:
		return flexui.Bindable[string]{}, p.errorf(n, "store %q cannot be shown as text", name)
	}
}

// editableText resolves a string property that receives user edits.
func (b *builder) editableText(p *props, key string) (flexui.Bindable[string], error) {
	return scalar[string](b, p, key, true)
}

func (b *builder) integer(p *props, key string, twoWay bool) (flexui.Bindable[int], error) {
	return scalar[int](b, p, key, twoWay)
}

func (b *builder) boolean(p *props, key string, twoWay bool) (flexui.Bindable[bool], error) {
	return scalar[bool](b, p, key, twoWay)
}

func (b *builder) list(p *props, key string) (flexui.Bindable[[]string], error) {
	return scalar[[]string](b, p, key, false)
}

// scalar resolves a property of type T: a literal decoded from YAML or a
// reference to a store of exactly that type.
func scalar[T any](b *builder, p *props, key string, twoWay bool) (flexui.Bindable[T], error) {
	var zero flexui.Bindable[T]
	n := p.take(key)
	if n == nil {
		return zero, nil
	}
	if name, ok := reference(n); ok {
		s, err := b.store(p, n, name)
		if err != nil {
			return zero, err
		}
		st, ok := s.(*flexui.Store[T])
		if !ok {
			var want T
			return zero, p.errorf(n, "%s needs a store of %T, %q is %s", key, want, name, storeType(s))
		}
		if twoWay {
			return flexui.BindTwoWay(st), nil
		}
		return flexui.Bind[T](st), nil
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return zero, p.errorf(n, "%s: %v", key, err)
	}
	return flexui.Value(v), nil
}

// plain decodes a property that cannot be bound to a store.
func plain[T any](p *props, key string, fallback T) (T, error) {
	n := p.take(key)
	if n == nil {
		return fallback, nil
	}
	if _, ok := reference(n); ok {
		return fallback, p.errorf(n, "%s cannot be bound to a store", key)
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return fallback, p.errorf(n, "%s: %v", key, err)
	}
	return v, nil
}

func storeType(s any) string {
	switch s.(type) {
	case *flexui.Store[string]:
		return "a string store"
	case *flexui.Store[int]:
		return "an int store"
	case *flexui.Store[bool]:
		return "a bool store"
	case *flexui.Store[[]string]:
		return "a list store"
	default:
		return fmt.Sprintf("%T", s)
	}
}

func (b *builder) scale(p *props, key string) (flexui.Scale, error) {
	n := p.take(key)
	if n == nil {
		return flexui.Auto(), nil
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return flexui.Scale{}, p.errorf(n, "%s: %v", key, err)
	}
	s, err := flexui.ParseScaleValue(raw)
	if err != nil {
		return flexui.Scale{}, p.errorf(n, "%s: %v", key, err)
	}
	return s, nil
}

func (b *builder) padding(p *props) (flexui.Padding, error) {
	n := p.take("padding")
	if n == nil {
		return flexui.Padding{}, nil
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return flexui.Padding{}, p.errorf(n, "padding: %v", err)
	}
	pad, err := flexui.ParsePadding(raw)
	if err != nil {
		return flexui.Padding{}, p.errorf(n, "padding: %v", err)
	}
	return pad, nil
}

// visibility accepts "visible", "hidden" or "none", a string store holding
// one of those, or a bool store where false means "none".
func (b *builder) visibility(p *props) (flexui.Bindable[flexui.Visibility], error) {
	var zero flexui.Bindable[flexui.Visibility]
	n := p.take("visibility")
	if n == nil {
		return zero, nil
	}
	name, ok := reference(n)
	if !ok {
		v, err := flexui.ParseVisibility(n.Value)
		if err != nil {
			return zero, p.errorf(n, "%v", err)
		}
		return flexui.Value(v), nil
	}
	s, err := b.store(p, n, name)
	if err != nil {
		return zero, err
	}
	switch st := s.(type) {
	case *flexui.Store[bool]:
		return flexui.Bind(flexui.Compute(st, func(shown bool) flexui.Visibility {
			if shown {
				return flexui.VisibilityVisible
			}
			return flexui.VisibilityNone
		})), nil
	case *flexui.Store[string]:
		return flexui.Bind(flexui.Compute(st, func(text string) flexui.Visibility {
			v, _ := flexui.ParseVisibility(text)
			return v
		})), nil
	default:
		return zero, p.errorf(n, "visibility needs a bool or string store, %q is %s", name, storeType(s))
	}
}
