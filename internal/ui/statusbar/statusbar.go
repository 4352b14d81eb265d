// Package statusbar renders the bottom status line.
package statusbar

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tmercier/leadline/internal/ui/render"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// Height is the fixed height of the status bar (single line).
const Height = 1

// State is everything the status bar displays.
type State struct {
	Route         string
	FilterQuery   string    // active filter, if any
	PendingLeader string    // pending chord leader, "" when idle
	LastPoll      time.Time // zero until the first successful refresh
	Err           string    // last error, "" when healthy
}

// Render returns the status line for the given width.
func Render(s State, width int) string {
	t := styles.T()

	left := t.S().Title.Render(s.Route)
	if s.FilterQuery != "" {
		left += t.S().Muted.Render("  filter: ") + t.S().Base.Render(s.FilterQuery)
	}
	if s.Err != "" {
		left += "  " + t.S().Error.Render(render.Truncate(s.Err, width/2))
	}

	var rightParts []string
	if s.PendingLeader != "" {
		// showcmd-style hint while a chord completion window is open
		rightParts = append(rightParts, t.S().Accent.Render(s.PendingLeader+" …"))
	}
	if !s.LastPoll.IsZero() {
		rightParts = append(rightParts, t.S().Subtle.Render("updated "+humanize.Time(s.LastPoll)))
	}
	rightParts = append(rightParts, t.S().Subtle.Render("? help"))

	return render.Row(left, strings.Join(rightParts, "  "), width)
}
