package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string `json:"repository_type"`
	Repository     any    `json:"repository,omitempty"`
	LastOperation  string `json:"last_operation,omitempty"`
	LastCount      int    `json:"last_count"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{
		RepositoryType: "unknown",
		LastOperation:  s.lastOp,
		LastCount:      s.lastOpCount,
	}
	if s.repo != nil {
		state.RepositoryType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			state.RepositoryType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			state.Repository = intro.State()
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
