// Package core holds the note domain: the Note record, the Repository contract
// and the Service that implements every note operation on top of it.
package core

import (
	"fmt"
	"time"
)

// TimestampLayout is the second-precision layout used for note timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is a single stored text entry.
// IDs are unique among stored notes except after an external edit, which is
// what FixIDs exists to repair.
type Note struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// EventType represents the type of change observed on the store file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the backing store on disk.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// Clock returns the current time. Tests inject fixed clocks.
type Clock func() time.Time
