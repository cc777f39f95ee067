package core

import "context"

// Repository defines the contract for persisting the note collection.
// The collection is always read and written as a whole.
type Repository interface {
	// Load returns every stored note in storage order.
	// A missing or unparseable store yields an empty slice and no error.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the stored collection with notes.
	Save(ctx context.Context, notes []Note) error
}

// Exporter is implemented by repositories that can write human-readable reports.
type Exporter interface {
	// WriteReport writes report to path, replacing any existing file.
	WriteReport(ctx context.Context, path string, report []byte) error
}

// Watchable is implemented by repositories that can observe their backing store.
type Watchable interface {
	// Watch emits an Event for every change of the store until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
