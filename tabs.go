package flexui

import (
	"fmt"

	"github.com/grindlemire/flexui/internal/debug"
)

// TabParams configures one tab of a tabbed window.
type TabParams struct {
	Title string
	// Padding around the tab's content. Unset means no extra padding.
	Padding Padding
	// Spacing between content elements defaults to 3px.
	Spacing   Scale
	Direction Direction
	Content   []WidgetCreator

	// OnOpen runs when the tab becomes visible, including when the window
	// opens on it.
	OnOpen func()
	// OnClose runs when the tab stops being visible.
	OnClose func()
}

// TabCreator is a tab ready to be built into a tabbed window.
type TabCreator struct {
	params TabParams
}

// Tab creates a tab for TabWindowParams.Tabs.
func Tab(params TabParams) TabCreator {
	return TabCreator{params: params}
}

// tabPage is a built tab: its content container, descriptors and events.
type tabPage struct {
	title   string
	content *container
	widgets []Widget
	events  eventLists
}

func (tc TabCreator) build(index int, out *BuildOutput) (*tabPage, error) {
	p := tc.params
	op := fmt.Sprintf("flexui.Tab[%d]", index)

	it, err := parseItem(op, Item{Padding: p.Padding}, Weight(1), Weight(1))
	if err != nil {
		return nil, err
	}
	if err := p.Spacing.Validate(); err != nil {
		return nil, configError(op, "spacing: %v", err)
	}

	page := &tabPage{title: p.Title}
	scoped := out.scoped(index, &page.widgets, &page.events)
	page.content = newContainer(scoped, it)
	page.content.axis = p.Direction
	page.content.spacing = p.Spacing.Or(defaultSpacing)
	if page.content.children, err = buildAll(p.Content, page.content, scoped); err != nil {
		return nil, err
	}

	if p.OnOpen != nil {
		scoped.On(EventOpen, func(*WindowContext) { p.OnOpen() })
	}
	if p.OnClose != nil {
		scoped.On(EventClose, func(*WindowContext) { p.OnClose() })
	}
	return page, nil
}

// TabWindowParams configures a window with tabs.
type TabWindowParams struct {
	Title                string
	Width, Height        int
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	// Padding around the content defaults to 5px on every side.
	Padding Padding
	// Spacing between the static content and the tab defaults to 3px.
	Spacing Scale

	// Static content is shown above the tab on every tab.
	Static []WidgetCreator
	Tabs   []TabCreator
	// StartingTab is the tab shown when the window opens.
	StartingTab int

	OnOpen      func()
	OnUpdate    func()
	OnClose     func()
	OnTabChange func(index int)
}

func (p TabWindowParams) shape() windowShape {
	return windowShape{
		title: p.Title, width: p.Width, height: p.Height,
		minWidth: p.MinWidth, maxWidth: p.MaxWidth,
		minHeight: p.MinHeight, maxHeight: p.MaxHeight,
		padding: p.Padding, spacing: p.Spacing, direction: Column,
		onOpen: p.OnOpen, onUpdate: p.OnUpdate, onClose: p.OnClose,
	}
}

// TabWindow builds a window with tabs. Only the selected tab is laid out;
// the bindings of the other tabs stay live so their widgets are current when
// they are selected.
func TabWindow(params TabWindowParams, opts ...TemplateOption) (*WindowTemplate, error) {
	const op = "flexui.TabWindow"
	if len(params.Tabs) == 0 {
		return nil, configError(op, "a tab window needs at least one tab")
	}
	if params.StartingTab < 0 || params.StartingTab >= len(params.Tabs) {
		return nil, configError(op, "starting tab %d out of range [0, %d)", params.StartingTab, len(params.Tabs))
	}

	t, out, err := newTemplate(op, params.shape(), titleBarHeight+tabBarHeight, opts)
	if err != nil {
		return nil, err
	}
	if t.root.children, err = buildAll(params.Static, t.root, out); err != nil {
		return nil, fmt.Errorf("building window %q: %w", params.Title, err)
	}
	for i, tc := range params.Tabs {
		page, err := tc.build(i, out)
		if err != nil {
			return nil, fmt.Errorf("building window %q: %w", params.Title, err)
		}
		t.tabs = append(t.tabs, page)
	}

	t.active = params.StartingTab
	t.root.children = append(t.root.children, t.tabs[t.active].content)
	t.onTabChange = params.OnTabChange
	return t, nil
}

// SelectTab shows the tab at index, as if the user selected it on the host.
func (t *WindowTemplate) SelectTab(index int) {
	t.selectTab(index)
}

// selectTab swaps the shown tab, lays out its content and fires the tab
// events. Out of range indices and the current tab are ignored.
func (t *WindowTemplate) selectTab(index int) {
	if index < 0 || index >= len(t.tabs) || index == t.active {
		return
	}
	open := t.state == StateOpen
	if open {
		t.tabs[t.active].events.fire(EventClose, t.ctx)
	}

	debug.Log("WindowTemplate.selectTab: %d -> %d", t.active, index)
	t.active = index
	t.root.children[len(t.root.children)-1] = t.tabs[index].content
	if !open {
		return
	}

	t.layoutAll()
	t.window.Invalidate()
	t.tabs[index].events.fire(EventOpen, t.ctx)
	if t.onTabChange != nil {
		t.onTabChange(index)
	}
}
