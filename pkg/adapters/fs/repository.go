// Package fs implements core.Repository on top of a single file on the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/noty/pkg/core"
)

// DefaultFileName is the store filename used inside the user's home directory.
const DefaultFileName = ".noty_notes.json"

// Repository implements core.Repository using one file holding the whole collection.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
	recovered     int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path        string
	Logger      *slog.Logger
	Serializers map[string]Serializer // Extension -> serializer. Defaults to DefaultSerializers().
	FileMode    os.FileMode           // Defaults to 0644.
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: serializerFor(config.Path, config.Serializers),
	}
}

// Load reads the store. A missing file is an empty store.
// Content that cannot be parsed is also treated as an empty store so a damaged
// file never blocks further use; the parse error is only logged at debug level.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, &core.IOError{Op: "read", Path: r.Path, Err: err}
	}

	notes, err := r.serializer.Parse(data)
	if err != nil {
		r.config.Logger.Debug("store unreadable, starting empty", "path", r.Path, "error", err)
		r.mu.Lock()
		r.recovered++
		r.mu.Unlock()
		return []core.Note{}, nil
	}
	if notes == nil {
		notes = []core.Note{}
	}

	r.config.Logger.Debug("notes loaded", "path", r.Path, "count", len(notes))
	r.touch(&r.lastLoad)
	return notes, nil
}

// Save replaces the store content with notes.
//
// Workflow:
//  1. Serialize with the codec chosen from the file extension.
//  2. Create the parent directory if needed.
//  3. Write atomically (temp file + rename).
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.serializer.Serialize(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return &core.IOError{Op: "write", Path: r.Path, Err: err}
	}

	if err := writeFileAtomic(r.Path, data, r.config.FileMode); err != nil {
		return &core.IOError{Op: "write", Path: r.Path, Err: err}
	}

	r.config.Logger.Debug("notes saved", "path", r.Path, "count", len(notes))
	r.touch(&r.lastSave)
	return nil
}

// WriteReport implements core.Exporter.
func (r *Repository) WriteReport(ctx context.Context, path string, report []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFileAtomic(path, report, 0644); err != nil {
		return &core.IOError{Op: "export", Path: path, Err: err}
	}
	return nil
}

func (r *Repository) touch(field **time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	*field = &now
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Exporter   = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)
