package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/describe"
)

// Pixels per terminal cell used by --fit, matching the terminal host.
const (
	cellWidth  = 6
	cellHeight = 14
)

// runLayout implements the layout subcommand.
func runLayout(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	width := fs.Int("w", 0, "window width in pixels")
	height := fs.Int("h", 0, "window height in pixels")
	fit := fs.Bool("fit", false, "size the window to the terminal")
	tab := fs.Int("tab", 0, "tab to select before printing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("layout needs exactly one description file")
	}

	d, err := describe.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	host := flexui.NewMockHost()
	tmpl, err := d.Build(flexui.WithHost(host))
	if err != nil {
		return err
	}
	if err := tmpl.Open(); err != nil {
		return err
	}
	defer tmpl.Close()
	window := host.Last()

	if *fit {
		cols, rows, ok := terminalSize(int(os.Stdout.Fd()))
		if !ok {
			return errors.New("--fit needs a terminal")
		}
		*width, *height = cols*cellWidth, rows*cellHeight
	}
	if *width > 0 || *height > 0 {
		w, h := window.Size()
		if *width > 0 {
			w = *width
		}
		if *height > 0 {
			h = *height
		}
		window.Resize(w, h)
		window.Update()
	}
	tabSet := false
	fs.Visit(func(f *flag.Flag) { tabSet = tabSet || f.Name == "tab" })
	if tabSet {
		if !d.Tabbed() {
			return errors.New("--tab needs a tabbed description")
		}
		if *tab < 0 || *tab >= len(window.Tabs) {
			return fmt.Errorf("--tab %d is out of range: %s has %d tab(s)", *tab, fs.Arg(0), len(window.Tabs))
		}
		window.SwitchTab(*tab)
	}

	return printLayout(out, tmpl, window)
}

// printLayout writes one line per visible widget.
func printLayout(out io.Writer, tmpl *flexui.WindowTemplate, window *flexui.MockWindow) error {
	w, h := window.Size()
	fmt.Fprintf(out, "%s %dx%d", tmpl.Title(), w, h)
	if len(window.Tabs) > 0 {
		fmt.Fprintf(out, " tab %d", window.TabIndex())
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tX\tY\tWIDTH\tHEIGHT\tSHOWN")
	for _, widget := range window.Visible() {
		b := widget.Base()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%v\n", b.Name, b.X, b.Y, b.Width, b.Height, b.IsVisible)
	}
	return tw.Flush()
}
