package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/input"
)

// ChordTimeoutCmd returns a command that expires a chord completion window.
// The generation pins the timeout to the chord that armed it.
func ChordTimeoutCmd(gen int) tea.Cmd {
	return tea.Tick(input.ChordWindow, func(_ time.Time) tea.Msg {
		return ChordTimeoutMsg{Gen: gen}
	})
}

// PollTickCmd returns a command that fires the next periodic refresh.
func PollTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollTickMsg(t)
	})
}

func (m Model) loadStatsCmd() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		stats, err := backend.Stats()
		return StatsLoadedMsg{Stats: stats, Err: err}
	}
}

func (m Model) loadLeadsCmd() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		leads, err := backend.Leads("")
		return LeadsLoadedMsg{Leads: leads, Err: err}
	}
}

func (m Model) loadBookingsCmd() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		bookings, err := backend.Bookings()
		return BookingsLoadedMsg{Bookings: bookings, Err: err}
	}
}

func (m Model) loadCampaignsCmd() tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		campaigns, err := backend.Campaigns()
		return CampaignsLoadedMsg{Campaigns: campaigns, Err: err}
	}
}

func (m Model) updateLeadStatusCmd(id, status string) tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		lead, err := backend.UpdateLeadStatus(id, status)
		return LeadUpdatedMsg{Lead: lead, Err: err}
	}
}

func (m Model) setCampaignPausedCmd(id string, paused bool) tea.Cmd {
	backend := m.Backend
	return func() tea.Msg {
		campaign, err := backend.SetCampaignPaused(id, paused)
		return CampaignUpdatedMsg{Campaign: campaign, Err: err}
	}
}
