// Package leadlist renders the leads page: a filterable table of inbound leads.
package leadlist

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/tmercier/leadline/internal/api"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/datatable"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// StatusCycleRequestedMsg asks the app to advance a lead to its next status.
type StatusCycleRequestedMsg struct {
	Lead       api.Lead
	NextStatus string
}

// statusOrder is the cycle walked by the "s" key.
var statusOrder = []string{
	api.LeadStatusNew,
	api.LeadStatusContacted,
	api.LeadStatusQualified,
	api.LeadStatusWon,
	api.LeadStatusLost,
}

type row struct {
	lead api.Lead
}

func (r row) Columns() []string {
	return []string{
		r.lead.Name,
		r.lead.Status,
		r.lead.Source,
		humanize.Time(r.lead.CreatedAt),
		r.lead.Email,
	}
}

func (r row) FilterValue() string {
	return r.lead.Name + " " + r.lead.Email + " " + r.lead.Source + " " + r.lead.Status
}

// Model holds the leads page state.
type Model struct {
	ui.Base
	table  datatable.Model[row]
	loaded bool
}

// New creates an empty leads page.
func New() Model {
	return Model{
		table: datatable.New[row]([]datatable.Column{
			{Title: "Name", Width: 24},
			{Title: "Status", Width: 10},
			{Title: "Source", Width: 12},
			{Title: "Received", Width: 16},
			{Title: "Email", Flex: true},
		}),
	}
}

// SetLeads replaces the table contents.
func (m *Model) SetLeads(leads []api.Lead) {
	rows := make([]row, len(leads))
	for i, l := range leads {
		rows[i] = row{lead: l}
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

// Selected returns the lead under the cursor.
func (m Model) Selected() (api.Lead, bool) {
	r, ok := m.table.Selected()
	return r.lead, ok
}

// Update handles movement and the status-cycle key.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "s" {
		if lead, ok := m.Selected(); ok {
			next := nextStatus(lead.Status)
			return m, func() tea.Msg {
				return StatusCycleRequestedMsg{Lead: lead, NextStatus: next}
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

func nextStatus(status string) string {
	for i, s := range statusOrder {
		if s == status {
			return statusOrder[(i+1)%len(statusOrder)]
		}
	}
	return api.LeadStatusNew
}
