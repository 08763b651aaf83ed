package platform

import (
	"context"

	"github.com/jotter-app/jotter/pkg/adapters/memory"
	"github.com/jotter-app/jotter/pkg/core"
)

// New wires up a ready-to-use note service.
//
// Resolution order for the provider: an injected provider wins, then a
// seed from options, then a seed from the config file, then an empty
// in-memory collection. The service is initialized (initial fetch done)
// before it is returned.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var cfg Config
	if o.configFile != "" {
		var err error
		cfg, err = LoadConfig(o.configFile)
		if err != nil {
			return nil, err
		}
	}

	provider := o.provider
	if provider == nil {
		seed := o.seed
		if seed == nil {
			seed = cfg.Seed
		}
		provider = memory.NewProvider(seed)
	}

	buffer := o.buffer
	if buffer <= 0 {
		buffer = cfg.EventBuffer
	}

	coreOpts := []core.ServiceOption{}
	if o.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(o.logger))
	}
	if buffer > 0 {
		coreOpts = append(coreOpts, core.WithEventBuffer(buffer))
	}

	service := core.NewService(provider, coreOpts...)
	if err := service.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return service, nil
}

// UI resolves the view-layer preferences for the given option set.
// It is separate from New because only the TUI path needs it.
func UI(opts ...Option) (UIConfig, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.configFile == "" {
		return UIConfig{}, nil
	}
	cfg, err := LoadConfig(o.configFile)
	if err != nil {
		return UIConfig{}, err
	}
	return cfg.UI, nil
}
