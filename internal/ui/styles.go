// Package ui implements the terminal view layer: a root list model owning
// the cursor and create form, and one item model per note that toggles
// between a read view and an edit form. The note collection itself is
// owned by the core service; this package only proposes changes to it.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styled components of the view layer.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme name.
// Anything other than "light" gets the dark palette.
func NewStyles(theme string) Styles {
	var (
		primary = lipgloss.Color("205")
		accent  = lipgloss.Color("86")
		muted   = lipgloss.Color("241")
		errCol  = lipgloss.Color("196")
	)
	if theme == "light" {
		primary = lipgloss.Color("53")
		accent = lipgloss.Color("29")
		muted = lipgloss.Color("245")
		errCol = lipgloss.Color("124")
	}

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Faint:    lipgloss.NewStyle().Foreground(muted),
		Label:    lipgloss.NewStyle().Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(errCol),
		Help:     lipgloss.NewStyle().Foreground(muted),
		Status:   lipgloss.NewStyle().Foreground(accent),
	}
}

// DefaultStyles returns styles with the default (dark) theme.
func DefaultStyles() Styles {
	return NewStyles("dark")
}
