package app

import "github.com/tmercier/leadline/internal/api"

// Backend is the slice of the API client the app uses. Defined here so tests
// can substitute a fake.
type Backend interface {
	Stats() (*api.Stats, error)
	Leads(status string) ([]api.Lead, error)
	UpdateLeadStatus(id, status string) (*api.Lead, error)
	Bookings() ([]api.Booking, error)
	Campaigns() ([]api.Campaign, error)
	SetCampaignPaused(id string, paused bool) (*api.Campaign, error)
}

var _ Backend = (*api.Client)(nil)
