package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/tmercier/leadline/internal/api"
)

func TestViewBeforeLoad(t *testing.T) {
	m := New()
	m.SetSize(120, 30)
	if !strings.Contains(ansi.Strip(m.View()), "loading") {
		t.Error("expected loading placeholder before stats arrive")
	}
}

func TestViewShowsStats(t *testing.T) {
	m := New()
	m.SetSize(120, 30)
	m.SetStats(api.Stats{
		TotalLeads:        1234,
		NewToday:          7,
		BookingsThisWeek:  18,
		ResponseRate:      0.82,
		MedianResponseSec: 95,
		Series: []api.DayCount{
			{Date: "2026-08-25", Count: 3},
			{Date: "2026-08-26", Count: 9},
		},
	})

	view := ansi.Strip(m.View())
	for _, want := range []string{"1,234", "7 today", "18", "82%", "1m", "2026-08-25", "2026-08-26"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestViewEmptySeries(t *testing.T) {
	m := New()
	m.SetSize(120, 30)
	m.SetStats(api.Stats{TotalLeads: 1})

	if !strings.Contains(ansi.Strip(m.View()), "no data yet") {
		t.Error("expected empty-series placeholder")
	}
}

func TestResponseLabel(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{42, "42s"},
		{95, "1m"},
		{3600, "1h"},
		{4200, "1h 10m"},
	}
	for _, tt := range tests {
		if got := responseLabel(tt.secs); got != tt.want {
			t.Errorf("responseLabel(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
