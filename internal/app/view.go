package app

import (
	"strings"

	"github.com/tmercier/leadline/internal/ui/headerbar"
	"github.com/tmercier/leadline/internal/ui/popup"
	"github.com/tmercier/leadline/internal/ui/statusbar"
)

// searchLineHeight is the row reserved for the search input under the header.
const searchLineHeight = 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.Route, m.Width)
	search := m.Search.View()
	page := m.activePageView()

	status := statusbar.Render(statusbar.State{
		Route:         m.Route,
		FilterQuery:   m.Search.Value(),
		PendingLeader: m.Machine.Pending(),
		LastPoll:      m.LastPoll,
		Err:           m.ErrorMsg,
	}, m.Width)

	view := header + "\n" + search + "\n" + page
	view = enforceHeight(view, m.Height-statusbar.Height)
	view += "\n" + status

	if m.HelpVisible {
		view = popup.Compose(view, m.Help.View(), m.Width, m.Height)
	}

	return view
}

func (m Model) activePageView() string {
	switch m.Route {
	case RouteDashboard:
		return m.Dashboard.View()
	case RouteLeads:
		return m.Leads.View()
	case RouteBookings:
		return m.Bookings.View()
	case RouteCampaigns:
		return m.Campaigns.View()
	}
	return ""
}

// enforceHeight pads or trims content to an exact line count so the status
// bar always sits on the bottom row.
func enforceHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
