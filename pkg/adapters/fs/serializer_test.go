package fs

import (
	"strings"
	"testing"

	"github.com/aretw0/noty/pkg/core"
)

func TestSerializers(t *testing.T) {
	notes := []core.Note{
		{ID: 1, Text: "multi\nline: with: colons", Timestamp: "2024-03-09 10:00:00"},
		{ID: 2, Text: "unicode ✓", Timestamp: "2024-03-09 10:00:01"},
	}

	serializers := DefaultSerializers()

	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			s := serializers[ext]

			data, err := s.Serialize(notes)
			if err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}

			parsed, err := s.Parse(data)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if len(parsed) != len(notes) {
				t.Fatalf("expected %d notes, got %d", len(notes), len(parsed))
			}
			for i := range notes {
				if parsed[i] != notes[i] {
					t.Errorf("note %d mismatch. Want %+v, got %+v", i, notes[i], parsed[i])
				}
			}
		})
	}
}

func TestSerializerFor(t *testing.T) {
	serializers := DefaultSerializers()

	tests := map[string]string{
		"/home/u/.noty_notes.json": "json",
		"notes.YAML":               "yaml",
		"notes.yml":                "yaml",
		"notes":                    "json",
		"notes.txt":                "json",
	}
	for path, want := range tests {
		if got := serializerFor(path, serializers).Name(); got != want {
			t.Errorf("serializerFor(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestYAMLSerializer_EmptyDocument(t *testing.T) {
	notes, err := YAMLSerializer{}.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}

	data, err := YAMLSerializer{}.Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty sequence, got %q", string(data))
	}
}
