package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) runAdd(cmd *cobra.Command, text string) error {
	if _, err := c.svc.Add(cmd.Context(), text); err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added note: %s\n", text)
	return nil
}

func (c *cli) runList(cmd *cobra.Command) error {
	notes, err := c.svc.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}

	if c.listJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	}

	renderList(cmd.OutOrStdout(), notes)
	return nil
}

func (c *cli) runRemove(cmd *cobra.Command, rawID string) error {
	note, err := c.svc.Remove(cmd.Context(), rawID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed note #%d: %s\n", note.ID, note.Text)
	return nil
}

func (c *cli) runFix(cmd *cobra.Command) error {
	n, err := c.svc.FixIDs(cmd.Context())
	if err != nil {
		return fmt.Errorf("fixing IDs: %w", err)
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No notes to fix.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Fixed IDs for %d notes.\n", n)
	return nil
}

func (c *cli) runExport(cmd *cobra.Command, path string) error {
	res, err := c.svc.Export(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	if res.Count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No notes to export.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to: %s\n", res.Count, res.Path)
	return nil
}

func (c *cli) runClear(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	prompt := newPrompter(cmd.InOrStdin(), out)

	res, err := c.svc.Clear(cmd.Context(), func(total int) (bool, error) {
		fmt.Fprintf(out, "Warning: This will permanently delete all %d notes!\n", total)
		fmt.Fprintln(out, "This action cannot be undone.")
		return prompt.Confirm("Are you sure you want to delete all notes? (y/N): ")
	})
	if err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	switch {
	case res.Total == 0:
		fmt.Fprintln(out, "No notes to clear.")
	case res.Cleared:
		fmt.Fprintf(out, "Cleared all %d notes.\n", res.Total)
	default:
		fmt.Fprintln(out, "Operation cancelled.")
	}
	return nil
}
