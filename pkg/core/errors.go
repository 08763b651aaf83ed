package core

import "errors"

// Common errors.
var (
	// ErrEmptyTitle is returned by CreateNote when the title is empty or blank.
	ErrEmptyTitle = errors.New("note title cannot be empty")

	// ErrNoProvider is returned by Initialize when no data provider is configured.
	ErrNoProvider = errors.New("no data provider configured")
)
