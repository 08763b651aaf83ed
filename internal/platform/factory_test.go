package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotter-app/jotter/pkg/core"
)

type staticProvider struct {
	notes []core.Note
}

func (p *staticProvider) Fetch(ctx context.Context) ([]core.Note, error) {
	return p.notes, nil
}

func TestNew_WithSeed(t *testing.T) {
	svc, err := New(WithSeed([]core.Note{
		{ID: 1, Title: "First Task"},
		{ID: 2, Title: "Second Task"},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Len())

	n, ok := svc.FindNote(2)
	require.True(t, ok)
	assert.Equal(t, "Second Task", n.Title)
}

func TestNew_DefaultsToEmptyCollection(t *testing.T) {
	svc, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, svc.Len())
}

func TestNew_InjectedProviderWins(t *testing.T) {
	svc, err := New(
		WithProvider(&staticProvider{notes: []core.Note{{ID: 7, Title: "Injected"}}}),
		WithSeed([]core.Note{{ID: 1, Title: "Ignored"}}),
	)
	require.NoError(t, err)

	_, ok := svc.FindNote(7)
	assert.True(t, ok)
	_, ok = svc.FindNote(1)
	assert.False(t, ok)
}

func TestNew_SeedFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jotter.yaml")
	data := `seed:
  - id: 1
    title: First Task
    description: Pick Up Paycheck
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	svc, err := New(WithConfigFile(path))
	require.NoError(t, err)

	n, ok := svc.FindNote(1)
	require.True(t, ok)
	assert.Equal(t, "Pick Up Paycheck", n.Description)

	uiCfg, err := UI(WithConfigFile(path))
	require.NoError(t, err)
	assert.Empty(t, uiCfg.Theme)
}

func TestNew_OptionSeedOverridesConfigSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jotter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed:\n  - id: 9\n    title: FromFile\n"), 0644))

	svc, err := New(
		WithConfigFile(path),
		WithSeed([]core.Note{{ID: 1, Title: "FromOption"}}),
	)
	require.NoError(t, err)

	_, ok := svc.FindNote(9)
	assert.False(t, ok)
	_, ok = svc.FindNote(1)
	assert.True(t, ok)
}
