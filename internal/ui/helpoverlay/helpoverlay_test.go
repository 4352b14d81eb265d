package helpoverlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewListsBindings(t *testing.T) {
	m := New()
	m.SetSize(100, 40)

	view := ansi.Strip(m.View())
	for _, want := range []string{"Keyboard Shortcuts", "g d", "g l", "g b", "g c", "Go to dashboard", "Global", "Leads"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}
}

func TestViewEmptyWithoutSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("expected empty view before size is known")
	}
}

func TestScrollClamps(t *testing.T) {
	m := New()
	m.SetSize(100, 12) // small height forces scrolling

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}

	m, _ = m.Update(up)
	if m.scrollOffset != 0 {
		t.Errorf("scroll above top: offset = %d", m.scrollOffset)
	}

	for range 100 {
		m, _ = m.Update(down)
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scroll past bottom: offset = %d, max = %d", m.scrollOffset, m.maxScroll())
	}
}

func TestResetScroll(t *testing.T) {
	m := New()
	m.SetSize(100, 12)
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	m, _ = m.Update(down)
	m.Reset()
	if m.scrollOffset != 0 {
		t.Errorf("Reset did not rewind scroll, offset = %d", m.scrollOffset)
	}
}

func TestQRequestsClose(t *testing.T) {
	m := New()
	m.SetSize(100, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected close command on q")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Errorf("expected CloseMsg, got %T", cmd())
	}
}
