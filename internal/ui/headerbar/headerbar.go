// Package headerbar renders the top navigation bar with page tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmercier/leadline/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// tab represents a header bar tab. The chord column reminds the user of the
// leader sequence that jumps to the page.
type tab struct {
	chord string
	name  string
	route string
}

var tabs = []tab{
	{"g d", "Dashboard", "/dashboard"},
	{"g l", "Leads", "/leads"},
	{"g b", "Bookings", "/bookings"},
	{"g c", "Campaigns", "/campaigns"},
}

// Render returns the header bar string for the given width.
func Render(activeRoute string, width int) string {
	t := styles.T()
	activeStyle := t.S().Accent
	inactiveStyle := t.S().Muted
	chordStyle := t.S().Subtle
	sep := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		name := inactiveStyle.Render(tb.name)
		if tb.route == activeRoute {
			name = activeStyle.Render(tb.name)
		}
		parts = append(parts, chordStyle.Render(tb.chord)+" "+name)
	}

	bar := strings.Join(parts, sep)
	if w := lipgloss.Width(bar); w < width {
		bar += strings.Repeat(" ", width-w)
	}
	return bar
}
