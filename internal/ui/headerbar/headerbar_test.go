package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRender_ContainsAllTabs(t *testing.T) {
	bar := ansi.Strip(Render("/dashboard", 120))

	for _, name := range []string{"Dashboard", "Leads", "Bookings", "Campaigns"} {
		if !strings.Contains(bar, name) {
			t.Errorf("header missing tab %q", name)
		}
	}
}

func TestRender_ShowsChords(t *testing.T) {
	bar := ansi.Strip(Render("/leads", 120))

	for _, chord := range []string{"g d", "g l", "g b", "g c"} {
		if !strings.Contains(bar, chord) {
			t.Errorf("header missing chord hint %q", chord)
		}
	}
}

func TestRender_PadsToWidth(t *testing.T) {
	bar := Render("/leads", 200)
	if got := ansi.StringWidth(bar); got != 200 {
		t.Errorf("width = %d, want 200", got)
	}
}
