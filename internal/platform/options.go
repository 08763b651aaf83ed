package platform

import (
	"log/slog"

	"github.com/jotter-app/jotter/pkg/core"
)

// options holds the internal configuration for the jotter service.
type options struct {
	provider   core.Provider
	logger     *slog.Logger
	seed       []core.Note
	configFile string
	buffer     int
}

// Option defines a functional option for configuring jotter.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithProvider injects a custom data provider (e.g. a mock, or a future
// remote client). If provided, the default in-memory adapter is skipped
// and any seed is ignored.
func WithProvider(p core.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithSeed sets the starting collection served by the default in-memory
// provider. Takes precedence over seeds from a config file.
func WithSeed(notes []core.Note) Option {
	return func(o *options) {
		o.seed = notes
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventBuffer sets the size of the event subscriber buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.buffer = size
	}
}

// WithConfigFile loads configuration (seed notes, event buffer, UI
// preferences) from the given YAML file. A missing file is not an error.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}
