package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotter-app/jotter/pkg/adapters/memory"
	"github.com/jotter-app/jotter/pkg/core"
)

func TestProvider_FetchReturnsSeed(t *testing.T) {
	seed := []core.Note{
		{ID: 1, Title: "First Task", Description: "Pick Up Paycheck"},
		{ID: 2, Title: "Second Task", Description: "Mail Rent Check"},
	}
	p := memory.NewProvider(seed)

	notes, err := p.Fetch(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, seed, notes)
}

func TestProvider_FetchCopies(t *testing.T) {
	seed := []core.Note{{ID: 1, Title: "First Task"}}
	p := memory.NewProvider(seed)

	// Neither the caller's seed slice nor a fetched slice aliases the
	// provider's internal state.
	seed[0].Title = "tampered seed"
	first, err := p.Fetch(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "First Task", first[0].Title)

	first[0].Title = "tampered fetch"
	second, err := p.Fetch(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "First Task", second[0].Title)
}

func TestProvider_FetchHonoursContext(t *testing.T) {
	p := memory.NewProvider(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider_ComponentType(t *testing.T) {
	assert.Equal(t, "memory-provider", memory.NewProvider(nil).ComponentType())
}
