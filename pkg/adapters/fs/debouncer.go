package fs

import (
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/noty/pkg/core"
)

// debouncer coalesces bursts of events per key; the latest event wins.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]core.Event
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

func (d *debouncer) add(key string, event core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[key] = event
	if t, ok := d.timers[key]; ok && t.Stop() {
		t.Reset(d.delay)
		return
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		e, ok := d.pending[key]
		delete(d.pending, key)
		delete(d.timers, key)
		d.mu.Unlock()

		if ok {
			fire(e)
		}
	})
}

// stopAndWait drops pending events and waits up to timeout for callbacks in flight.
// It returns context.DeadlineExceeded if a callback is still running.
func (d *debouncer) stopAndWait(timeout time.Duration) error {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	return lifecycle.BlockWithTimeout(done, timeout)
}
