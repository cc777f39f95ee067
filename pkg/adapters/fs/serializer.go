package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/noty/pkg/core"
	"gopkg.in/yaml.v3"
)

// Serializer defines how the note collection is encoded on disk.
type Serializer interface {
	// Parse decodes a stored collection.
	Parse(data []byte) ([]core.Note, error)
	// Serialize encodes the collection.
	Serialize(notes []core.Note) ([]byte, error)
	// Name identifies the format in state dumps.
	Name() string
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": JSONSerializer{},
		".yaml": YAMLSerializer{},
		".yml":  YAMLSerializer{},
	}
}

// serializerFor picks the serializer for path, falling back to JSON.
func serializerFor(path string, serializers map[string]Serializer) Serializer {
	if s, ok := serializers[strings.ToLower(filepath.Ext(path))]; ok {
		return s
	}
	return JSONSerializer{}
}

// --- JSON Serializer ---

// JSONSerializer stores notes as an indented JSON array.
type JSONSerializer struct{}

func (JSONSerializer) Name() string { return "json" }

func (JSONSerializer) Parse(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return notes, nil
}

func (JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	return json.MarshalIndent(notes, "", "  ")
}

// --- YAML Serializer ---

// YAMLSerializer stores notes as a YAML sequence.
type YAMLSerializer struct{}

func (YAMLSerializer) Name() string { return "yaml" }

func (YAMLSerializer) Parse(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return notes, nil
}

func (YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
