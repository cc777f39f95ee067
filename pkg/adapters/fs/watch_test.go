package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noty/pkg/core"
)

func waitForEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for store event")
	}
	return core.Event{}
}

func TestRepository_WatchReportsSaves(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "notes.json")
	repo := NewRepository(Config{Path: path})

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	assert.True(t, repo.State().(RepositoryState).WatcherActive)

	require.NoError(t, repo.Save(ctx, sampleNotes()))

	e := waitForEvent(t, events)
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, e.Path)
	assert.Equal(t, core.EventCreate, e.Type)

	// Unrelated files in the same directory are not reported.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.Remove(path))

	e = waitForEvent(t, events)
	assert.Equal(t, core.EventDelete, e.Type)
	assert.Equal(t, abs, e.Path)
}

func TestRepository_WatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := NewRepository(Config{Path: filepath.Join(t.TempDir(), "notes.json")})

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	cancel()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				assert.Eventually(t, func() bool {
					return !repo.State().(RepositoryState).WatcherActive
				}, time.Second, 10*time.Millisecond)
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed after cancel")
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	target := "/data/notes.json"

	tests := []struct {
		name   string
		event  string
		ignore bool
	}{
		{"store file", "/data/notes.json", false},
		{"temp file", "/data/" + TempFilePrefix + "123456", true},
		{"sibling", "/data/other.json", true},
		{"unclean path", "/data/./notes.json", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := shouldIgnore(fsnotify.Event{Name: tc.event, Op: fsnotify.Write}, target)
			assert.Equal(t, tc.ignore, got)
		})
	}
}

func TestMapEventType(t *testing.T) {
	assert.Equal(t, core.EventCreate, mapEventType(fsnotify.Event{Op: fsnotify.Create}))
	assert.Equal(t, core.EventModify, mapEventType(fsnotify.Event{Op: fsnotify.Write}))
	assert.Equal(t, core.EventDelete, mapEventType(fsnotify.Event{Op: fsnotify.Remove}))
	assert.Equal(t, core.EventDelete, mapEventType(fsnotify.Event{Op: fsnotify.Rename}))
	assert.Equal(t, core.EventType(""), mapEventType(fsnotify.Event{Op: fsnotify.Chmod}))
}
