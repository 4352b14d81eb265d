package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Application routes. They double as the navigation chord targets.
const (
	RouteDashboard = "/dashboard"
	RouteLeads     = "/leads"
	RouteBookings  = "/bookings"
	RouteCampaigns = "/campaigns"
)

// routeOrder is the tab cycle order.
var routeOrder = []string{RouteDashboard, RouteLeads, RouteBookings, RouteCampaigns}

func isRoute(route string) bool {
	for _, r := range routeOrder {
		if r == route {
			return true
		}
	}
	return false
}

// navigate switches to a route, persists it, and kicks off that page's load.
// Navigating to the current route just refreshes it.
func (m Model) navigate(route string) (Model, tea.Cmd) {
	if !isRoute(route) {
		return m, nil
	}

	if route != m.Route {
		m.Route = route
		m.Search.Reset()
		m.applyFilter("")
		m.saveUIState()
	}
	return m, m.loadForRoute(route)
}

func (m Model) nextRoute() string {
	for i, r := range routeOrder {
		if r == m.Route {
			return routeOrder[(i+1)%len(routeOrder)]
		}
	}
	return RouteDashboard
}

func (m Model) loadForRoute(route string) tea.Cmd {
	switch route {
	case RouteDashboard:
		return m.loadStatsCmd()
	case RouteLeads:
		return m.loadLeadsCmd()
	case RouteBookings:
		return m.loadBookingsCmd()
	case RouteCampaigns:
		return m.loadCampaignsCmd()
	}
	return nil
}

// applyFilter pushes the search query to the page that shows lists.
func (m *Model) applyFilter(query string) {
	switch m.Route {
	case RouteLeads:
		m.Leads.SetFilter(query)
	case RouteBookings:
		m.Bookings.SetFilter(query)
	case RouteCampaigns:
		m.Campaigns.SetFilter(query)
	}
}
