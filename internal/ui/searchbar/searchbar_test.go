package searchbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRune(m Model, r rune) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestModel_FocusBlur(t *testing.T) {
	m := New()

	if m.Focused() {
		t.Fatal("new search bar should be blurred")
	}

	m.Focus()
	if !m.Focused() {
		t.Fatal("Focus() should focus the input")
	}

	m.Blur()
	if m.Focused() {
		t.Fatal("Blur() should release focus")
	}
}

func TestUpdate_IgnoresKeysWhileBlurred(t *testing.T) {
	m := New()

	m, cmd := typeRune(m, 'a')

	if cmd != nil {
		t.Error("blurred search bar should not react to keys")
	}
	if m.Value() != "" {
		t.Errorf("value = %q, want empty", m.Value())
	}
}

func TestUpdate_TypingEmitsQueryChanged(t *testing.T) {
	m := New()
	m.Focus()

	m, cmd := typeRune(m, 'a')

	if m.Value() != "a" {
		t.Fatalf("value = %q, want a", m.Value())
	}
	if cmd == nil {
		t.Fatal("expected a command carrying QueryChangedMsg")
	}
	// The batch may contain cursor commands; find our message.
	if !containsQueryChanged(cmd, "a") {
		t.Error("QueryChangedMsg(a) not emitted")
	}
}

func TestUpdate_EnterSubmitsAndBlurs(t *testing.T) {
	m := New()
	m.Focus()
	m, _ = typeRune(m, 'x')

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Focused() {
		t.Error("enter should blur the input")
	}
	if cmd == nil {
		t.Fatal("expected SubmittedMsg command")
	}
	msg := cmd()
	sub, ok := msg.(SubmittedMsg)
	if !ok {
		t.Fatalf("msg = %T, want SubmittedMsg", msg)
	}
	if sub.Query != "x" {
		t.Errorf("query = %q, want x", sub.Query)
	}
}

func TestUpdate_CtrlUClears(t *testing.T) {
	m := New()
	m.Focus()
	m, _ = typeRune(m, 'x')

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	if m.Value() != "" {
		t.Errorf("value = %q, want empty", m.Value())
	}
	if !containsQueryChanged(cmd, "") {
		t.Error("clearing should emit QueryChangedMsg(\"\")")
	}
}

// containsQueryChanged executes cmd (flattening batches) and reports whether
// a QueryChangedMsg with the given query was produced.
func containsQueryChanged(cmd tea.Cmd, query string) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case QueryChangedMsg:
		return msg.Query == query
	case tea.BatchMsg:
		for _, sub := range msg {
			if containsQueryChanged(sub, query) {
				return true
			}
		}
	}
	return false
}
