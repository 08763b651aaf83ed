// Package memory provides the in-memory data provider: a seeded,
// copy-on-fetch source for the initial note collection. It is the default
// adapter and the reference implementation of core.Provider for tests.
package memory

import (
	"context"

	"github.com/aretw0/introspection"

	"github.com/jotter-app/jotter/pkg/core"
)

// Provider serves a fixed seed collection from memory.
type Provider struct {
	seed []core.Note
}

// NewProvider creates a provider that serves the given seed notes.
// The seed is copied; later mutations of the caller's slice are not seen.
func NewProvider(seed []core.Note) *Provider {
	notes := make([]core.Note, len(seed))
	copy(notes, seed)
	return &Provider{seed: notes}
}

// Fetch implements core.Provider. Each call returns a fresh copy so the
// service's owned collection never aliases the seed.
func (p *Provider) Fetch(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]core.Note, len(p.seed))
	copy(out, p.seed)
	return out, nil
}

// ComponentType implements introspection.Component.
func (p *Provider) ComponentType() string {
	return "memory-provider"
}

var _ core.Provider = (*Provider)(nil)
var _ introspection.Component = (*Provider)(nil)
