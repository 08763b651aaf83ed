package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	NoteCount       int    `json:"note_count"`
	EventBufferSize int    `json:"event_buffer_size"`
	ProviderType    string `json:"provider_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	providerType := "none"
	if s.provider != nil {
		providerType = "provider"
		if comp, ok := s.provider.(introspection.Component); ok {
			providerType = comp.ComponentType()
		}
	}

	return ServiceState{
		NoteCount:       len(s.notes),
		EventBufferSize: s.eventBufferSize,
		ProviderType:    providerType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
