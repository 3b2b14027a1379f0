package flexui

import "fmt"

// WindowEvent is a point in a window's life that build steps can hook into.
type WindowEvent uint8

const (
	// EventOpen fires after the window opened and was laid out.
	EventOpen WindowEvent = iota
	// EventUpdate fires on every host update tick while open.
	EventUpdate
	// EventClose fires after the window closed and its bindings were dropped.
	EventClose

	eventCount
)

func (e WindowEvent) String() string {
	switch e {
	case EventOpen:
		return "open"
	case EventUpdate:
		return "update"
	case EventClose:
		return "close"
	default:
		return fmt.Sprintf("WindowEvent(%d)", int(e))
	}
}

// eventLists holds the callbacks for each WindowEvent in registration order.
type eventLists [eventCount][]func(*WindowContext)

func (l *eventLists) fire(event WindowEvent, ctx *WindowContext) {
	for _, fn := range l[event] {
		fn(ctx)
	}
}

// Parent is the container an element is placed in.
type Parent interface {
	// Recalculate marks the parent to be laid out again on the next redraw.
	Recalculate()
}

// Placement is an element's parsed position within its parent.
type Placement struct {
	Item
	// Hidden elements take no space and are skipped by their container.
	Hidden bool
}

// Element is a constructed node of a window: a control or a container.
type Element interface {
	// Placement returns the element's size, padding and bounds.
	Placement() Placement
	// Layout positions the element inside area. The element's own padding has
	// already been applied by its parent.
	Layout(area Rect)
}

// WidgetCreator builds an element into out. Controls are created through the
// functions of this package, such as Button or Vertical.
type WidgetCreator func(parent Parent, out *BuildOutput) (Element, error)

// nameArena issues widget names for one build. Names are unique within the
// window being built.
type nameArena struct {
	next int
}

func (a *nameArena) name(kind WidgetType) string {
	a.next++
	return fmt.Sprintf("%s-%d", kind, a.next)
}

// BuildOutput collects what the creators of one window produce: widget
// descriptors, bindings and event callbacks.
type BuildOutput struct {
	// Binder receives the bindings of every control.
	Binder *Binder
	// Context is the runtime context of the window being built.
	Context *WindowContext

	widgets *[]Widget
	events  *eventLists
	names   *nameArena
	// tab is the index of the tab being built, or -1 outside tabs.
	tab int
}

func newBuildOutput(binder *Binder, ctx *WindowContext, widgets *[]Widget, events *eventLists) *BuildOutput {
	return &BuildOutput{
		Binder:  binder,
		Context: ctx,
		widgets: widgets,
		events:  events,
		names:   &nameArena{},
		tab:     -1,
	}
}

// scoped returns an output that shares the binder, context and names of o but
// collects widgets and events into its own lists. Tabs build through it.
func (o *BuildOutput) scoped(tab int, widgets *[]Widget, events *eventLists) *BuildOutput {
	return &BuildOutput{
		Binder:  o.Binder,
		Context: o.Context,
		widgets: widgets,
		events:  events,
		names:   o.names,
		tab:     tab,
	}
}

// NextName returns a fresh widget name for kind.
func (o *BuildOutput) NextName(kind WidgetType) string {
	return o.names.name(kind)
}

// Add registers a widget descriptor. Widgets without a name get one.
func (o *BuildOutput) Add(w Widget) {
	base := w.Base()
	if base.Name == "" {
		base.Name = o.NextName(base.Type)
	}
	*o.widgets = append(*o.widgets, w)
}

// On registers fn to run on event.
func (o *BuildOutput) On(event WindowEvent, fn func(*WindowContext)) {
	o.events[event] = append(o.events[event], fn)
}

// buildAll runs creators in order and stops at the first error.
func buildAll(creators []WidgetCreator, parent Parent, out *BuildOutput) ([]Element, error) {
	elements := make([]Element, 0, len(creators))
	for i, create := range creators {
		if create == nil {
			return nil, configError("flexui.build", "content[%d] is nil", i)
		}
		el, err := create(parent, out)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}
