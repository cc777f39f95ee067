package fs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/noty/pkg/core"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	var fired []core.Event
	record := func(e core.Event) {
		mu.Lock()
		fired = append(fired, e)
		mu.Unlock()
	}

	d.add("k", core.Event{Type: core.EventCreate}, record)
	d.add("k", core.Event{Type: core.EventModify}, record)
	d.add("k", core.Event{Type: core.EventDelete}, record)

	time.Sleep(150 * time.Millisecond)
	if err := d.stopAndWait(time.Second); err != nil {
		t.Fatalf("stopAndWait: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("expected 1 coalesced event, got %d", len(fired))
	}
	if fired[0].Type != core.EventDelete {
		t.Errorf("expected latest event to win, got %s", fired[0].Type)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)
	d.add("k", core.Event{Type: core.EventCreate}, func(core.Event) {
		t.Error("pending event must not fire after stop")
	})

	done := make(chan struct{})
	go func() {
		if err := d.stopAndWait(time.Second); err != nil {
			t.Errorf("stopAndWait: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stopAndWait blocked")
	}

	d.add("k", core.Event{}, func(core.Event) {
		t.Error("add after stop must be ignored")
	})
}

func TestDebouncerStopTimesOut(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	started := make(chan struct{})
	release := make(chan struct{})
	d.add("k", core.Event{Type: core.EventModify}, func(core.Event) {
		close(started)
		<-release
	})

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}

	err := d.stopAndWait(20 * time.Millisecond)
	close(release)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}
