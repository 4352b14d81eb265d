// Package campaignlist renders the campaigns page.
package campaignlist

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/api"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/datatable"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// ToggleRequestedMsg asks the app to pause or resume a campaign.
type ToggleRequestedMsg struct {
	Campaign api.Campaign
	Paused   bool // desired state
}

type row struct {
	campaign api.Campaign
}

func (r row) Columns() []string {
	state := "active"
	if r.campaign.Paused {
		state = "paused"
	}
	return []string{
		r.campaign.Name,
		r.campaign.Channel,
		state,
		strconv.Itoa(r.campaign.LeadCount),
		fmt.Sprintf("%.0f%%", r.campaign.ReplyRate*100),
	}
}

func (r row) FilterValue() string {
	return r.campaign.Name + " " + r.campaign.Channel
}

// Model holds the campaigns page state.
type Model struct {
	ui.Base
	table  datatable.Model[row]
	loaded bool
}

// New creates an empty campaigns page.
func New() Model {
	return Model{
		table: datatable.New[row]([]datatable.Column{
			{Title: "Campaign", Flex: true},
			{Title: "Channel", Width: 8},
			{Title: "State", Width: 8},
			{Title: "Leads", Width: 6},
			{Title: "Replies", Width: 8},
		}),
	}
}

// SetCampaigns replaces the table contents.
func (m *Model) SetCampaigns(campaigns []api.Campaign) {
	rows := make([]row, len(campaigns))
	for i, c := range campaigns {
		rows[i] = row{campaign: c}
	}
	m.table.SetRows(rows)
	m.loaded = true
}

// SetFilter applies the search query to the table.
func (m *Model) SetFilter(query string) {
	m.table.SetFilter(query)
}

// SetSize forwards dimensions to the table.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.table.SetSize(width, height)
}

// Selected returns the campaign under the cursor.
func (m Model) Selected() (api.Campaign, bool) {
	r, ok := m.table.Selected()
	return r.campaign, ok
}

// Update handles movement and the pause toggle key.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "p" {
		if c, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return ToggleRequestedMsg{Campaign: c, Paused: !c.Paused}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the page.
func (m Model) View() string {
	if !m.loaded {
		return styles.T().S().Muted.Render("loading…")
	}
	return m.table.View()
}
