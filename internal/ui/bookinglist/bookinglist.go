// Package bookinglist renders the bookings page.
package bookinglist

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/tmercier/leadline/internal/api"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/datatable"
	"github.com/tmercier/leadline/internal/ui/styles"
)

type row struct {
	booking api.Booking
}

func (r row) Columns() []string {
	return []string{
		r.booking.LeadName,
		r.booking.Service,
		r.booking.StartsAt.Format("Mon Jan 2 15:04"),
		humanize.Time(r.booking.StartsAt),
		r.booking.Status,
	}
}

func (r row) FilterValue() string {
	return r.booking.LeadName + " " + r.booking.Service + " " + r.booking.Status
}

// Model holds the bookings page state.
type Model struct {
	ui.Base
	table  datatable.Model[row]
	loaded bool
}

// New creates an empty bookings page.
func New() Model {
	return Model{
		table: datatable.New[row]([]datatable.Column{
			{Title: "Lead", Width: 24},
			{Title: "Service", Flex: true},
			{Title: "When", Width: 18},
			{Title: "In", Width: 14},
			{Title: "Status", Width: 10},
		}),
	}
}

// SetBookings replaces the table contents.
func (m *Model) SetBookings(bookings []api.Booking) {
	rows := make([]row, len(bookings))
	for i, b := range bookings {
		rows[i] = row{booking: b}
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

// Selected returns the booking under the cursor.
func (m Model) Selected() (api.Booking, bool) {
	r, ok := m.table.Selected()
	return r.booking, ok
}

// Update handles movement keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
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
