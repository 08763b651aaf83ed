package core

import "context"

// Provider defines the contract for sourcing the initial note collection.
// It is the injectable collaborator behind Initialize: the service stays
// testable without a live data source, and a future remote client only has
// to satisfy this interface. There is no write path; once fetched, the
// collection is owned exclusively by the Service and lives in memory.
type Provider interface {
	// Fetch returns the starting collection, in display order.
	Fetch(ctx context.Context) ([]Note, error)
}
