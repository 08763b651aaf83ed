package core

import "fmt"

// EventType represents the type of change in the collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the owned note collection.
// It is published after every successful mutation so that observers
// (the TUI, bridges, tests) can refresh from the snapshot.
type Event struct {
	Type      EventType
	ID        int
	Title     string // Title at the time of the event, used for pattern subscriptions
	Timestamp int64  // Unix timestamp
}

// String implements fmt.Stringer (and the lifecycle.Event contract).
func (e Event) String() string {
	return fmt.Sprintf("%s note %d (%s)", e.Type, e.ID, e.Title)
}
