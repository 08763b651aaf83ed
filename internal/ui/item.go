package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotter-app/jotter/pkg/core"
)

// ItemModel renders a single note, bound 1:1 to one collection entry.
// It holds the transient editing flag locally; the note data itself stays
// owned by the service. Saving emits the edited values (merged with the
// original ID) upward via saveNoteMsg.
type ItemModel struct {
	note    core.Note
	editing bool

	title    textinput.Model
	desc     textinput.Model
	focusIdx int
	errText  string

	styles Styles
}

// NewItemModel creates the view for one note, in the Viewing state.
func NewItemModel(n core.Note, styles Styles) ItemModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 120
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "Description"
	di.CharLimit = 500
	di.Width = 60

	return ItemModel{
		note:   n,
		title:  ti,
		desc:   di,
		styles: styles,
	}
}

// Note returns the note this view is bound to.
func (m ItemModel) Note() core.Note {
	return m.note
}

// Editing reports whether the view is in the Editing state.
func (m ItemModel) Editing() bool {
	return m.editing
}

// StartEdit transitions Viewing -> Editing and pre-populates the inputs
// with the current values. Triggering it while already editing is a no-op:
// in-progress edits are kept.
func (m *ItemModel) StartEdit() {
	if m.editing {
		return
	}
	m.editing = true
	m.focusIdx = 0
	m.errText = ""
	m.title.SetValue(m.note.Title)
	m.desc.SetValue(m.note.Description)
	m.title.Focus()
	m.desc.Blur()
}

// CancelEdit discards local edits and reverts to Viewing. The owned
// collection is untouched.
func (m *ItemModel) CancelEdit() {
	m.editing = false
	m.errText = ""
	m.title.Blur()
	m.desc.Blur()
}

// Update handles messages while the item is in the Editing state.
func (m ItemModel) Update(msg tea.Msg) (ItemModel, tea.Cmd) {
	if !m.editing {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.CancelEdit()
			return m, nil
		case "tab", "shift+tab":
			m.focusIdx = 1 - m.focusIdx
			if m.focusIdx == 0 {
				m.title.Focus()
				m.desc.Blur()
			} else {
				m.desc.Focus()
				m.title.Blur()
			}
			return m, nil
		case "enter":
			if strings.TrimSpace(m.title.Value()) == "" {
				m.errText = "title is required"
				return m, nil
			}
			edited := core.Note{
				ID:          m.note.ID, // ID is immutable; only text changes
				Title:       m.title.Value(),
				Description: m.desc.Value(),
			}
			m.editing = false
			m.errText = ""
			m.title.Blur()
			m.desc.Blur()
			return m, saveNote(edited)
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

// View renders the item. In Viewing state the note is static text; in
// Editing state the pre-filled inputs replace it.
func (m ItemModel) View(selected bool) string {
	if m.editing {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("Title:"), m.title.View()))
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("Description:"), m.desc.View()))
		if m.errText != "" {
			sb.WriteString(m.styles.Error.Render(m.errText))
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Help.Render("enter: save · esc: cancel · tab: switch field"))
		return sb.String()
	}

	cursor := "  "
	titleStyle := m.styles.Title
	if selected {
		cursor = "> "
		titleStyle = m.styles.Selected
	}

	line := fmt.Sprintf("%s%s", cursor, titleStyle.Render(m.note.Title))
	if m.note.Description != "" {
		line += "\n    " + m.styles.Faint.Render(m.note.Description)
	}
	return line
}
