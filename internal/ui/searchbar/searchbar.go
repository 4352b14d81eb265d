// Package searchbar wraps a text input used to filter the current page.
// While it is focused the dispatcher treats keystrokes as literal text.
package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/ui/styles"
)

// QueryChangedMsg is emitted whenever the filter query changes.
type QueryChangedMsg struct {
	Query string
}

// SubmittedMsg is emitted on Enter: keep the filter, release focus.
type SubmittedMsg struct {
	Query string
}

// Model holds the search input state.
type Model struct {
	input textinput.Model
	width int
}

// New creates a blurred, empty search bar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "filter…"
	ti.Prompt = "/ "
	ti.PromptStyle = styles.T().S().Accent
	ti.CharLimit = 128
	return Model{input: ti}
}

// Focused reports whether the input has focus (an editable context).
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Focus moves focus to the input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases focus, keeping the current query applied.
func (m *Model) Blur() {
	m.input.Blur()
}

// Value returns the current query.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the query and blurs.
func (m *Model) Reset() {
	m.input.Reset()
	m.input.Blur()
}

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = max(width-len(m.input.Prompt)-1, 8)
}

// Update handles key input while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.input.Focused() {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		m.input.Blur()
		return m, func() tea.Msg { return SubmittedMsg{Query: m.input.Value()} }
	case "ctrl+u":
		m.input.Reset()
		return m, func() tea.Msg { return QueryChangedMsg{Query: ""} }
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		query := m.input.Value()
		change := func() tea.Msg { return QueryChangedMsg{Query: query} }
		if cmd == nil {
			return m, change
		}
		return m, tea.Batch(cmd, change)
	}
	return m, cmd
}

// View renders the search bar.
func (m Model) View() string {
	return m.input.View()
}
