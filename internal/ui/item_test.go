package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotter-app/jotter/pkg/core"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestItemModel_ViewingRendersStaticText(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "First Task", Description: "Pick Up Paycheck"}, DefaultStyles())

	view := item.View(false)
	if !strings.Contains(view, "First Task") {
		t.Errorf("expected title in view, got %q", view)
	}
	if !strings.Contains(view, "Pick Up Paycheck") {
		t.Errorf("expected description in view, got %q", view)
	}
	if strings.Contains(view, "enter: save") {
		t.Error("viewing state must not render the save control")
	}

	if !strings.Contains(item.View(true), "> ") {
		t.Error("selected item should render the cursor marker")
	}
}

func TestItemModel_StartEditTogglesAndPrefills(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "First Task", Description: "Pick Up Paycheck"}, DefaultStyles())

	if item.Editing() {
		t.Fatal("initial state must be Viewing")
	}

	item.StartEdit()
	if !item.Editing() {
		t.Fatal("StartEdit must transition to Editing")
	}
	if got := item.title.Value(); got != "First Task" {
		t.Errorf("title input not pre-filled: %q", got)
	}
	if got := item.desc.Value(); got != "Pick Up Paycheck" {
		t.Errorf("description input not pre-filled: %q", got)
	}

	view := item.View(true)
	if !strings.Contains(view, "Title:") || !strings.Contains(view, "enter: save") {
		t.Errorf("editing view should render inputs and save control, got %q", view)
	}
}

func TestItemModel_StartEditWhileEditingIsNoop(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "First Task"}, DefaultStyles())
	item.StartEdit()

	item, _ = item.Update(keyRunes("!"))
	if got := item.title.Value(); got != "First Task!" {
		t.Fatalf("typing did not reach the title input: %q", got)
	}

	// Re-triggering edit keeps the in-progress edits.
	item.StartEdit()
	if !item.Editing() {
		t.Error("item left Editing state")
	}
	if got := item.title.Value(); got != "First Task!" {
		t.Errorf("re-edit discarded in-progress edits: %q", got)
	}
}

func TestItemModel_CancelDiscardsEdits(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "First Task"}, DefaultStyles())
	item.StartEdit()

	item, _ = item.Update(keyRunes("!"))
	item, cmd := item.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("cancel must not emit anything upward")
	}
	if item.Editing() {
		t.Error("esc must revert to Viewing")
	}
	if got := item.Note().Title; got != "First Task" {
		t.Errorf("cancel mutated the bound note: %q", got)
	}
}

func TestItemModel_SaveEmitsEditedNote(t *testing.T) {
	item := NewItemModel(core.Note{ID: 3, Title: "Third Task", Description: "Pay Electric Bill"}, DefaultStyles())
	item.StartEdit()

	item, _ = item.Update(keyRunes(" Now"))
	item, cmd := item.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("save must emit a message upward")
	}

	msg, ok := cmd().(saveNoteMsg)
	if !ok {
		t.Fatalf("expected saveNoteMsg, got %T", cmd())
	}
	if msg.note.ID != 3 {
		t.Errorf("save must preserve the note id, got %d", msg.note.ID)
	}
	if msg.note.Title != "Third Task Now" {
		t.Errorf("edited title not emitted: %q", msg.note.Title)
	}
	if msg.note.Description != "Pay Electric Bill" {
		t.Errorf("untouched description must be kept: %q", msg.note.Description)
	}

	if item.Editing() {
		t.Error("save must transition back to Viewing")
	}
	if strings.Contains(item.View(false), "enter: save") {
		t.Error("save control must disappear after saving")
	}
}

func TestItemModel_SaveRequiresTitle(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "A"}, DefaultStyles())
	item.StartEdit()

	item, _ = item.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := item.title.Value(); got != "" {
		t.Fatalf("expected cleared title input, got %q", got)
	}

	item, cmd := item.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("save with empty title must not emit upward")
	}
	if !item.Editing() {
		t.Error("item must stay in Editing state")
	}
	if !strings.Contains(item.View(true), "title is required") {
		t.Error("expected validation message in view")
	}
}

func TestItemModel_TabSwitchesFields(t *testing.T) {
	item := NewItemModel(core.Note{ID: 1, Title: "First Task", Description: "Old"}, DefaultStyles())
	item.StartEdit()

	item, _ = item.Update(tea.KeyMsg{Type: tea.KeyTab})
	item, _ = item.Update(keyRunes("!"))
	if got := item.desc.Value(); got != "Old!" {
		t.Errorf("typing after tab should reach the description input: %q", got)
	}
	if got := item.title.Value(); got != "First Task" {
		t.Errorf("title input must be untouched: %q", got)
	}
}
