package describe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/internal/debug"
)

// document is the top level of a description file.
type document struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"minWidth"`
	MaxWidth  int    `yaml:"maxWidth"`
	MinHeight int    `yaml:"minHeight"`
	MaxHeight int    `yaml:"maxHeight"`

	Padding   any    `yaml:"padding"`
	Spacing   any    `yaml:"spacing"`
	Direction string `yaml:"direction"`

	Stores      yaml.Node     `yaml:"stores"`
	Content     []yaml.Node   `yaml:"content"`
	Tabs        []tabDocument `yaml:"tabs"`
	StartingTab int           `yaml:"startingTab"`
}

type tabDocument struct {
	Title     string      `yaml:"title"`
	Padding   any         `yaml:"padding"`
	Spacing   any         `yaml:"spacing"`
	Direction string      `yaml:"direction"`
	Content   []yaml.Node `yaml:"content"`
}

// Description is a parsed window description, ready to be built into any
// number of window templates. All templates built from one description share
// its stores.
type Description struct {
	Title  string
	Stores *Stores

	window *flexui.WindowParams
	tabbed *flexui.TabWindowParams
}

// Load reads and parses the description at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses a description. Unknown fields, controls and properties are
// errors, as are references to undeclared stores.
func Parse(data []byte) (*Description, error) {
	const op = "describe.Parse"

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, configError(op, errors.New("empty description"))
		}
		return nil, configError(op, fmt.Errorf("failed to parse description: %w", err))
	}

	stores, err := newStores(&doc.Stores)
	if err != nil {
		return nil, configError(op, err)
	}
	b := &builder{stores: stores}

	padding, err := flexui.ParsePadding(doc.Padding)
	if err != nil {
		return nil, configError(op, fmt.Errorf("padding: %w", err))
	}
	spacing, err := flexui.ParseScaleValue(doc.Spacing)
	if err != nil {
		return nil, configError(op, fmt.Errorf("spacing: %w", err))
	}
	direction, err := parseDirection(doc.Direction)
	if err != nil {
		return nil, configError(op, err)
	}
	content, err := b.creators(doc.Content)
	if err != nil {
		return nil, configError(op, err)
	}

	d := &Description{Title: doc.Title, Stores: stores}
	if len(doc.Tabs) == 0 {
		d.window = &flexui.WindowParams{
			Title: doc.Title, Width: doc.Width, Height: doc.Height,
			MinWidth: doc.MinWidth, MaxWidth: doc.MaxWidth,
			MinHeight: doc.MinHeight, MaxHeight: doc.MaxHeight,
			Padding: padding, Spacing: spacing, Direction: direction,
			Content: content,
		}
		debug.Log("describe.Parse: window %q with %d elements and %d stores", doc.Title, len(content), stores.Len())
		return d, nil
	}

	if doc.Direction != "" {
		return nil, configError(op, errors.New("direction is not supported for tabbed windows"))
	}
	tabs := make([]flexui.TabCreator, 0, len(doc.Tabs))
	for i, td := range doc.Tabs {
		tab, err := b.tab(td)
		if err != nil {
			return nil, configError(op, fmt.Errorf("tabs[%d]: %w", i, err))
		}
		tabs = append(tabs, tab)
	}
	d.tabbed = &flexui.TabWindowParams{
		Title: doc.Title, Width: doc.Width, Height: doc.Height,
		MinWidth: doc.MinWidth, MaxWidth: doc.MaxWidth,
		MinHeight: doc.MinHeight, MaxHeight: doc.MaxHeight,
		Padding: padding, Spacing: spacing,
		Static: content, Tabs: tabs, StartingTab: doc.StartingTab,
	}
	debug.Log("describe.Parse: tab window %q with %d tabs and %d stores", doc.Title, len(tabs), stores.Len())
	return d, nil
}

// Tabbed reports whether the description builds a tabbed window.
func (d *Description) Tabbed() bool {
	return d.tabbed != nil
}

// Build creates a window template from the description.
func (d *Description) Build(opts ...flexui.TemplateOption) (*flexui.WindowTemplate, error) {
	if d.tabbed != nil {
		return flexui.TabWindow(*d.tabbed, opts...)
	}
	return flexui.Window(*d.window, opts...)
}

func (b *builder) tab(td tabDocument) (flexui.TabCreator, error) {
	padding, err := flexui.ParsePadding(td.Padding)
	if err != nil {
		return flexui.TabCreator{}, fmt.Errorf("padding: %w", err)
	}
	spacing, err := flexui.ParseScaleValue(td.Spacing)
	if err != nil {
		return flexui.TabCreator{}, fmt.Errorf("spacing: %w", err)
	}
	direction, err := parseDirection(td.Direction)
	if err != nil {
		return flexui.TabCreator{}, err
	}
	content, err := b.creators(td.Content)
	if err != nil {
		return flexui.TabCreator{}, err
	}
	return flexui.Tab(flexui.TabParams{
		Title: td.Title, Padding: padding, Spacing: spacing,
		Direction: direction, Content: content,
	}), nil
}

func parseDirection(s string) (flexui.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "column", "vertical":
		return flexui.Column, nil
	case "row", "horizontal":
		return flexui.Row, nil
	default:
		return flexui.Column, fmt.Errorf("unknown direction %q", s)
	}
}

func configError(op string, err error) error {
	return &flexui.Error{Op: op, Kind: flexui.KindConfiguration, Err: err}
}
