package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotter-app/jotter/pkg/core"
)

// Messages emitted by child models and handled by the root model. Children
// never mutate the collection themselves; they report user intent upward.

type createNoteMsg struct {
	title       string
	description string
}

type saveNoteMsg struct {
	note core.Note
}

type deleteNoteMsg struct {
	id int
}

type cancelCreateMsg struct{}

func createNote(title, description string) tea.Cmd {
	return func() tea.Msg {
		return createNoteMsg{title: title, description: description}
	}
}

func saveNote(n core.Note) tea.Cmd {
	return func() tea.Msg {
		return saveNoteMsg{note: n}
	}
}

func deleteNote(id int) tea.Cmd {
	return func() tea.Msg {
		return deleteNoteMsg{id: id}
	}
}

func cancelCreate() tea.Cmd {
	return func() tea.Msg {
		return cancelCreateMsg{}
	}
}
