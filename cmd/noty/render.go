package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/noty/pkg/core"
)

const listWidth = 60

// renderList prints the framed note listing. Styles degrade to plain text
// when w is not a terminal.
func renderList(w io.Writer, notes []core.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}

	r := lipgloss.NewRenderer(w)
	idStyle := r.NewStyle().Bold(true)
	dimStyle := r.NewStyle().Faint(true)

	rule := strings.Repeat("─", listWidth)
	sep := "   " + strings.Repeat("·", listWidth-2)

	fmt.Fprintf(w, "Found %d note(s):\n", len(notes))
	fmt.Fprintln(w, rule)

	for i, n := range notes {
		fmt.Fprintf(w, "  %s │ %s │ %s\n",
			idStyle.Render(fmt.Sprintf("#%d", n.ID)),
			dimStyle.Render(n.Timestamp),
			n.Text,
		)
		if i < len(notes)-1 {
			fmt.Fprintln(w, dimStyle.Render(sep))
		}
	}

	fmt.Fprintln(w, rule)
}
