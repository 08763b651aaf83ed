// Package jotter is the Composition Root for the jotter application.
//
// It connects the core business logic (Domain Layer) with the data
// adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Jotter is a deliberately small notes application: a single service owns
// an ordered, in-memory collection of note records, and the terminal view
// layer renders one view per note. All state lives in process memory and
// resets on exit; there is no persistence, network, or authentication
// layer by design.
//
// Features:
//
//   - **Hexagonal Architecture**: The core collection logic is isolated
//     behind the `core.Provider` port, so the initial data source is an
//     injectable collaborator (in-memory by default).
//   - **Single Owner**: One service owns the collection; views only
//     propose changes, keeping on-screen state and stored state aligned.
//   - **Reactive**: Every mutation publishes an event; observers subscribe
//     with glob patterns via `Service.Watch`.
//   - **Terminal UI**: A bubbletea view layer with per-note read/edit
//     toggling, plus a cobra CLI for scripted use.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := jotter.New(
//		jotter.WithSeed(seedNotes),
//		jotter.WithLogger(logger),
//	)
//
//	// Create a note
//	n, err := svc.CreateNote(ctx, "First Task", "Pick Up Paycheck")
package jotter
