// Package app contains the root TUI model and application-level messages.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/api"
)

// Message category interfaces for type-based routing in Update().
// External messages (from component packages) cannot implement these
// interfaces, so they are handled separately in the Update() switch.

// InputMessage is implemented by messages related to user input handling.
type InputMessage interface {
	tea.Msg
	inputMessage()
}

// DataMessage is implemented by messages carrying backend data.
type DataMessage interface {
	tea.Msg
	dataMessage()
}

// ChordTimeoutMsg is sent when a chord completion window expires. Gen
// identifies the chord it was armed for; a stale generation is ignored.
type ChordTimeoutMsg struct {
	Gen int
}

func (ChordTimeoutMsg) inputMessage() {}

// PollTickMsg triggers a periodic refresh of the current page.
type PollTickMsg time.Time

func (PollTickMsg) dataMessage() {}

// StatsLoadedMsg carries the dashboard summary.
type StatsLoadedMsg struct {
	Stats *api.Stats
	Err   error
}

func (StatsLoadedMsg) dataMessage() {}

// LeadsLoadedMsg carries the leads page data.
type LeadsLoadedMsg struct {
	Leads []api.Lead
	Err   error
}

func (LeadsLoadedMsg) dataMessage() {}

// BookingsLoadedMsg carries the bookings page data.
type BookingsLoadedMsg struct {
	Bookings []api.Booking
	Err      error
}

func (BookingsLoadedMsg) dataMessage() {}

// CampaignsLoadedMsg carries the campaigns page data.
type CampaignsLoadedMsg struct {
	Campaigns []api.Campaign
	Err       error
}

func (CampaignsLoadedMsg) dataMessage() {}

// LeadUpdatedMsg reports the result of a lead status change.
type LeadUpdatedMsg struct {
	Lead *api.Lead
	Err  error
}

func (LeadUpdatedMsg) dataMessage() {}

// CampaignUpdatedMsg reports the result of a campaign pause/resume.
type CampaignUpdatedMsg struct {
	Campaign *api.Campaign
	Err      error
}

func (CampaignUpdatedMsg) dataMessage() {}
