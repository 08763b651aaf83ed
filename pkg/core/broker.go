package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
)

// broker fans mutation events out to pattern subscribers. It decouples
// producers from consumers with a buffered channel per subscriber, so a
// slow (or absent) reader never blocks a mutating operation.
type broker struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int

	buffer int
	logger *slog.Logger
}

type subscriber struct {
	pattern string
	ch      chan Event
}

func newBroker(buffer int, logger *slog.Logger) *broker {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &broker{
		subs:   make(map[int]*subscriber),
		buffer: buffer,
		logger: logger,
	}
}

// subscribe registers a pattern subscription tied to ctx. The channel is
// closed once ctx is cancelled and the subscription removed.
func (b *broker) subscribe(ctx context.Context, pattern string) (<-chan Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	sub := &subscriber{
		pattern: pattern,
		ch:      make(chan Event, b.buffer),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	// Teardown tracked by the lifecycle supervisor rather than a bare
	// goroutine, so hosts embedding the service can drain it cleanly.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		close(sub.ch)
		return nil
	})

	return sub.ch, nil
}

// publish delivers the event to every subscriber whose pattern matches
// the note title. Full subscriber buffers drop the event with a warning.
func (b *broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		match, err := doublestar.Match(sub.pattern, e.Title)
		if err != nil || !match {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			b.logger.Warn("event dropped, subscriber buffer full",
				"pattern", sub.pattern, "event", e.String())
		}
	}
}
