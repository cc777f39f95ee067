package main

import (
	"fmt"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	storeevents "github.com/aretw0/noty/pkg/adapters/lifecycle"
)

// runWatch lists the notes and lists them again whenever the store changes,
// until interrupted.
func (c *cli) runWatch(cmd *cobra.Command) error {
	// A second Ctrl+C force-exits if shutdown hangs.
	ctx := lifecycle.NewSignalContext(cmd.Context(), lifecycle.WithForceExit(2))
	defer ctx.Cancel()
	defer ctx.Stop()

	events, err := c.svc.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching notes: %w", err)
	}

	src := storeevents.NewSource(events)
	if err := src.Start(ctx); err != nil {
		return fmt.Errorf("watching notes: %w", err)
	}

	if err := c.runList(cmd); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes (Ctrl+C to stop)...")

	for e := range src.Events() {
		c.logger.Debug("store changed", "event", e.String())
		fmt.Fprintln(cmd.OutOrStdout())
		if err := c.runList(cmd); err != nil {
			return err
		}
	}
	return nil
}
