package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/noty/pkg/core"
)

func TestFormatReport(t *testing.T) {
	notes := []core.Note{
		{ID: 1, Text: "buy milk", Timestamp: "2024-03-09 10:00:00"},
		{ID: 3, Text: "call mom", Timestamp: "2024-03-09 11:30:00"},
	}
	at := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)

	want := "NOTY - Exported Notes\n" +
		"==================================================\n" +
		"Exported on: 2024-03-09 12:00:00\n" +
		"Total notes: 2\n" +
		"\n" +
		"#1 - 2024-03-09 10:00:00\n" +
		"buy milk\n" +
		"----------------------------------------\n" +
		"\n" +
		"#3 - 2024-03-09 11:30:00\n" +
		"call mom\n" +
		"----------------------------------------\n" +
		"\n"

	if got := string(core.FormatReport(notes, at)); got != want {
		t.Errorf("report mismatch.\nwant:\n%s\ngot:\n%s", want, got)
	}
}
