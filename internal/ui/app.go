package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotter-app/jotter/pkg/core"
)

// Model is the root of the view layer. It owns the cursor, the create
// form, and one ItemModel per note in collection order. Every mutation
// goes through the service, after which the full item list is rebuilt
// from the snapshot.
type Model struct {
	svc    *core.Service
	styles Styles

	items    []ItemModel
	cursor   int
	creating bool
	form     FormModel

	viewport viewport.Model
	width    int
	height   int
	status   string
}

// NewModel creates the root model bound to the given service.
func NewModel(svc *core.Service, styles Styles) Model {
	m := Model{
		svc:      svc,
		styles:   styles,
		form:     NewFormModel(styles),
		viewport: viewport.New(80, 20),
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4 // Reserve space for header/footer
}

// reload rebuilds the item views 1:1 from the owned collection. All items
// come back in the Viewing state; transient edit state does not survive a
// re-render by design of the ownership split.
func (m *Model) reload() {
	notes := m.svc.Notes()
	items := make([]ItemModel, len(notes))
	for i, n := range notes {
		items[i] = NewItemModel(n, m.styles)
	}
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// editingItem reports whether the item under the cursor is in edit mode.
func (m Model) editingItem() bool {
	return m.cursor < len(m.items) && m.items[m.cursor].Editing()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case createNoteMsg:
		n, err := m.svc.CreateNote(context.Background(), msg.title, msg.description)
		if err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.creating = false
		m.reload()
		m.cursor = len(m.items) - 1
		m.status = "created " + n.Title
		return m, nil

	case cancelCreateMsg:
		m.creating = false
		return m, nil

	case saveNoteMsg:
		if err := m.svc.UpdateNote(context.Background(), msg.note); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.reload()
		m.status = "saved " + msg.note.Title
		return m, nil

	case deleteNoteMsg:
		if err := m.svc.DeleteNote(context.Background(), msg.id); err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.reload()
		m.status = "deleted"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The create form and an editing item capture the keyboard.
	if m.creating {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(key)
		return m, cmd
	}
	if m.editingItem() {
		var cmd tea.Cmd
		m.items[m.cursor], cmd = m.items[m.cursor].Update(key)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "n":
		m.creating = true
		m.form.Reset()
		m.status = ""
	case "e", "enter":
		if m.cursor < len(m.items) {
			m.items[m.cursor].StartEdit()
			m.status = ""
		}
	case "d":
		if m.cursor < len(m.items) {
			return m, deleteNote(m.items[m.cursor].Note().ID)
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("jotter"))
	sb.WriteString("\n")

	if m.creating {
		sb.WriteString(m.form.View())
		sb.WriteString("\n")
		return sb.String()
	}

	if len(m.items) == 0 {
		sb.WriteString(m.styles.Faint.Render("No notes yet. Press n to create one."))
		sb.WriteString("\n")
	} else {
		lines := make([]string, len(m.items))
		for i, item := range m.items {
			lines[i] = item.View(i == m.cursor)
		}
		m.viewport.SetContent(strings.Join(lines, "\n"))
		sb.WriteString(m.viewport.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("n: new · e: edit · d: delete · j/k: move · q: quit"))
	return sb.String()
}
