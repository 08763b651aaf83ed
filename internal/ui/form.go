package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel is the create form: two inputs and a submit. It emits
// createNoteMsg on submit and cancelCreateMsg on escape. An empty title
// is rejected with a visible validation message before anything reaches
// the service.
type FormModel struct {
	title    textinput.Model
	desc     textinput.Model
	focusIdx int
	errText  string

	styles Styles
}

// NewFormModel creates an empty, unfocused create form.
func NewFormModel(styles Styles) FormModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 120
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "Description"
	di.CharLimit = 500
	di.Width = 60

	return FormModel{
		title:  ti,
		desc:   di,
		styles: styles,
	}
}

// Reset clears the inputs and focuses the title field.
func (m *FormModel) Reset() {
	m.title.SetValue("")
	m.desc.SetValue("")
	m.errText = ""
	m.focusIdx = 0
	m.title.Focus()
	m.desc.Blur()
}

// Update handles key messages while the form is visible.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, cancelCreate()
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
			return m, createNote(m.title.Value(), m.desc.Value())
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

// View renders the form.
func (m FormModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("New note"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("Title:"), m.title.View()))
	sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("Description:"), m.desc.View()))
	if m.errText != "" {
		sb.WriteString(m.styles.Error.Render(m.errText))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("enter: create · esc: cancel · tab: switch field"))
	return sb.String()
}
