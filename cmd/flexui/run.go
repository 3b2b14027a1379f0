package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/describe"
	"github.com/grindlemire/flexui/termhost"
)

// runRun implements the run subcommand.
func runRun(args []string) error {
	if len(args) != 1 {
		return errors.New("run needs exactly one description file")
	}
	d, err := describe.Load(args[0])
	if err != nil {
		return err
	}

	host, err := termhost.New()
	if err != nil {
		return err
	}
	tmpl, err := d.Build(flexui.WithHost(host))
	if err != nil {
		return err
	}
	if err := tmpl.Open(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return host.Run(ctx)
}
