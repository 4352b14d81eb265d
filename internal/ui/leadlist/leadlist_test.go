package leadlist

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tmercier/leadline/internal/api"
)

func sampleLeads() []api.Lead {
	return []api.Lead{
		{ID: "l1", Name: "Ada Martin", Email: "ada@acme.test", Source: "web", Status: api.LeadStatusNew, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "l2", Name: "Ben Okafor", Email: "ben@globex.test", Source: "phone", Status: api.LeadStatusWon, CreatedAt: time.Now().Add(-24 * time.Hour)},
	}
}

func keyRune(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewShowsLeads(t *testing.T) {
	m := New()
	m.SetSize(100, 20)
	m.SetLeads(sampleLeads())

	view := ansi.Strip(m.View())
	for _, want := range []string{"Ada Martin", "Ben Okafor", "new", "won"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatusCycleRequest(t *testing.T) {
	m := New()
	m.SetSize(100, 20)
	m.SetLeads(sampleLeads())

	_, cmd := m.Update(keyRune("s"))
	if cmd == nil {
		t.Fatal("expected command on s")
	}
	req, ok := cmd().(StatusCycleRequestedMsg)
	if !ok {
		t.Fatalf("expected StatusCycleRequestedMsg, got %T", cmd())
	}
	if req.Lead.ID != "l1" {
		t.Errorf("expected cursor lead l1, got %s", req.Lead.ID)
	}
	if req.NextStatus != api.LeadStatusContacted {
		t.Errorf("new should advance to contacted, got %s", req.NextStatus)
	}
}

func TestStatusCycleWraps(t *testing.T) {
	if got := nextStatus(api.LeadStatusLost); got != api.LeadStatusNew {
		t.Errorf("lost should wrap to new, got %s", got)
	}
	if got := nextStatus("garbage"); got != api.LeadStatusNew {
		t.Errorf("unknown status should reset to new, got %s", got)
	}
}

func TestStatusCycleEmptyTable(t *testing.T) {
	m := New()
	m.SetSize(100, 20)
	m.SetLeads(nil)

	if _, cmd := m.Update(keyRune("s")); cmd != nil {
		t.Error("expected no command when nothing is selected")
	}
}

func TestFilter(t *testing.T) {
	m := New()
	m.SetSize(100, 20)
	m.SetLeads(sampleLeads())

	m.SetFilter("okafor")
	sel, ok := m.Selected()
	if !ok || sel.ID != "l2" {
		t.Errorf("expected filter to land on l2, got %v ok=%v", sel.ID, ok)
	}
}
