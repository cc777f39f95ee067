package core

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// FormatReport renders notes as the plain-text export document.
func FormatReport(notes []Note, exportedAt time.Time) []byte {
	var b bytes.Buffer

	b.WriteString("NOTY - Exported Notes\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Exported on: %s\n", exportedAt.Format(TimestampLayout))
	fmt.Fprintf(&b, "Total notes: %d\n\n", len(notes))

	for _, n := range notes {
		fmt.Fprintf(&b, "#%d - %s\n", n.ID, n.Timestamp)
		b.WriteString(n.Text + "\n")
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}

	return b.Bytes()
}
