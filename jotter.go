package jotter

import (
	"log/slog"

	"github.com/jotter-app/jotter/internal/platform"
	"github.com/jotter-app/jotter/pkg/core"
)

// Version is the library version.
var Version = "0.2.0"

// --- Types ---

// Note is a public alias for the note record.
type Note = core.Note

// Event is a public alias for a collection change event.
type Event = core.Event

// Service is a public alias for the note service (the list container).
type Service = core.Service

// Provider is a public alias for the data provider port.
type Provider = core.Provider

// --- Configuration ---

// Option defines a functional option for configuring jotter.
type Option = platform.Option

// WithProvider injects a custom data provider collaborator.
func WithProvider(p core.Provider) Option {
	return platform.WithProvider(p)
}

// WithSeed sets the starting collection for the in-memory provider.
func WithSeed(notes []core.Note) Option {
	return platform.WithSeed(notes)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithEventBuffer sets the size of the event subscriber buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithConfigFile loads seeds and preferences from a YAML config file.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// --- Factory ---

// New creates a new, initialized note Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}
