package core

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultEventBuffer is the subscriber channel capacity used when no
// explicit buffer size is configured.
const DefaultEventBuffer = 100

// Service is the single owner of the ordered note collection. All
// create/update/delete/lookup operations go through it; views never touch
// the collection directly, they propose changes that land here.
//
// The collection lives in process memory only and resets on restart.
type Service struct {
	mu       sync.RWMutex
	provider Provider
	notes    []Note

	logger          *slog.Logger
	broker          *broker
	eventBufferSize int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventBuffer sets the per-subscriber event channel capacity.
// Zero or negative means the default (100).
func WithEventBuffer(size int) ServiceOption {
	return func(s *Service) {
		if size > 0 {
			s.eventBufferSize = size
		}
	}
}

// NewService creates a Service backed by the given provider.
// The provider is only consulted by Initialize; afterwards the service is
// the sole owner of the collection.
func NewService(p Provider, opts ...ServiceOption) *Service {
	s := &Service{
		provider:        p,
		logger:          slog.New(slog.DiscardHandler),
		eventBufferSize: DefaultEventBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.broker = newBroker(s.eventBufferSize, s.logger)
	return s
}

// Initialize loads the starting collection from the provider.
// Calling it again replaces the collection with a fresh fetch.
func (s *Service) Initialize(ctx context.Context) error {
	if s.provider == nil {
		return ErrNoProvider
	}

	notes, err := s.provider.Fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.notes = make([]Note, len(notes))
	copy(s.notes, notes)
	s.mu.Unlock()

	s.logger.Debug("collection initialized", "count", len(notes))
	return nil
}

// FindNote returns the note with the given ID, or ok=false if absent.
// Linear scan; collections are expected to stay small.
func (s *Service) FindNote(id int) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// FindIndex returns the position of the note (matched by ID) within the
// ordered collection, or -1 if not found.
func (s *Service) FindIndex(n Note) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(n.ID)
}

// indexOf is the lock-free lookup shared by the mutating operations.
// Callers must hold s.mu.
func (s *Service) indexOf(id int) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// CreateNote constructs a note with a fresh unique ID and appends it to
// the end of the collection. A title that is empty or blank is rejected
// with ErrEmptyTitle.
func (s *Service) CreateNote(ctx context.Context, title, description string) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, ErrEmptyTitle
	}

	s.mu.Lock()
	n := Note{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
	}
	s.notes = append(s.notes, n)
	s.mu.Unlock()

	s.logger.Debug("note created", "id", n.ID, "title", n.Title)
	s.publish(EventCreate, n)
	return n, nil
}

// nextID assigns max-existing-ID+1. Callers must hold s.mu.
func (s *Service) nextID() int {
	max := 0
	for _, n := range s.notes {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}

// UpdateNote replaces the stored note carrying the same ID in place,
// preserving its position. An unknown ID is a silent no-op.
func (s *Service) UpdateNote(ctx context.Context, n Note) error {
	s.mu.Lock()
	idx := s.indexOf(n.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("update ignored, unknown note", "id", n.ID)
		return nil
	}
	s.notes[idx] = n
	s.mu.Unlock()

	s.logger.Debug("note updated", "id", n.ID, "title", n.Title)
	s.publish(EventModify, n)
	return nil
}

// DeleteNote removes the note with the given ID, preserving the relative
// order of the remainder. An unknown ID is a silent no-op.
func (s *Service) DeleteNote(ctx context.Context, id int) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("delete ignored, unknown note", "id", id)
		return nil
	}
	removed := s.notes[idx]
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	s.mu.Unlock()

	s.logger.Debug("note deleted", "id", id)
	s.publish(EventDelete, removed)
	return nil
}

// Notes returns a snapshot copy of the collection in display order.
func (s *Service) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes in the collection.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Watch subscribes to collection change events. The pattern is a glob
// matched against the note title; "*" matches everything. The returned
// channel is closed when ctx is cancelled. Slow consumers never block a
// mutation: events beyond the subscriber buffer are dropped.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	return s.broker.subscribe(ctx, pattern)
}

func (s *Service) publish(t EventType, n Note) {
	s.broker.publish(Event{
		Type:      t,
		ID:        n.ID,
		Title:     n.Title,
		Timestamp: time.Now().Unix(),
	})
}
