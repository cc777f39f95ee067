// Package lifecycle bridges note store events to github.com/aretw0/lifecycle.
package lifecycle

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/noty/pkg/core"
)

// ErrAlreadyStarted is returned when Start is called twice on the same source.
var ErrAlreadyStarted = errors.New("store source already started")

type storeSource struct {
	in      <-chan core.Event
	out     chan lifecycle.Event
	accept  map[core.EventType]bool
	started atomic.Bool
}

// NewSource creates a lifecycle.Source over a store's change events.
// When types is non-empty only those event types are forwarded.
// The output channel closes when the input closes or the Start context is done.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	s := &storeSource{
		in:  events,
		out: make(chan lifecycle.Event),
	}
	if len(types) > 0 {
		s.accept = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			s.accept[t] = true
		}
	}
	return s
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	lifecycle.Go(ctx, s.forward)
	return nil
}

func (s *storeSource) forward(ctx context.Context) error {
	defer close(s.out)
	for {
		var e core.Event
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case e, ok = <-s.in:
		}
		if !ok {
			return nil
		}
		if s.accept != nil && !s.accept[e.Type] {
			continue
		}
		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}
