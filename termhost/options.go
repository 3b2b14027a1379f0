package termhost

import (
	"fmt"
	"io"
	"time"
)

// Option is a functional option for configuring a Host.
type Option func(*Host) error

// WithCellSize sets how many window pixels one terminal cell covers.
// Default is 6x14, which puts one line of text in one row.
func WithCellSize(width, height int) Option {
	return func(h *Host) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("cell size %dx%d must be at least 1x1", width, height)
		}
		h.cellWidth, h.cellHeight = width, height
		return nil
	}
}

// WithTickInterval sets how often open windows receive their update tick.
// Default is 50ms.
func WithTickInterval(d time.Duration) Option {
	return func(h *Host) error {
		if d <= 0 {
			return fmt.Errorf("tick interval must be positive, got %v", d)
		}
		h.tick = d
		return nil
	}
}

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(h *Host) error {
		h.input = r
		return nil
	}
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(h *Host) error {
		h.output = w
		return nil
	}
}
