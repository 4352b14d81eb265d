package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/config"
	"github.com/tmercier/leadline/internal/input"
	"github.com/tmercier/leadline/internal/keymap"
	"github.com/tmercier/leadline/internal/state"
	"github.com/tmercier/leadline/internal/ui/bookinglist"
	"github.com/tmercier/leadline/internal/ui/campaignlist"
	"github.com/tmercier/leadline/internal/ui/dashboard"
	"github.com/tmercier/leadline/internal/ui/helpoverlay"
	"github.com/tmercier/leadline/internal/ui/leadlist"
	"github.com/tmercier/leadline/internal/ui/searchbar"
)

// Model is the root application model containing all state.
type Model struct {
	Cfg      *config.Config
	Backend  Backend
	StateMgr state.Interface
	Machine  *input.Machine

	Route       string
	Dashboard   dashboard.Model
	Leads       leadlist.Model
	Bookings    bookinglist.Model
	Campaigns   campaignlist.Model
	Search      searchbar.Model
	Help        helpoverlay.Model
	HelpVisible bool
	HelpSeen    bool

	ErrorMsg string
	LastPoll time.Time

	Width  int
	Height int
}

// New creates the application model. The start route comes from saved state,
// then the configured default, then the dashboard.
func New(cfg *config.Config, backend Backend, stateMgr state.Interface) Model {
	route := cfg.DefaultPage
	helpSeen := false
	if saved, err := stateMgr.GetUIState(); err == nil && saved != nil {
		if isRoute(saved.Route) {
			route = saved.Route
		}
		helpSeen = saved.HelpSeen
	}
	if !isRoute(route) {
		route = RouteDashboard
	}

	return Model{
		Cfg:       cfg,
		Backend:   backend,
		StateMgr:  stateMgr,
		Machine:   input.NewMachine(keymap.Default()),
		Route:     route,
		Dashboard: dashboard.New(),
		Leads:     leadlist.New(),
		Bookings:  bookinglist.New(),
		Campaigns: campaignlist.New(),
		Search:    searchbar.New(),
		Help:      helpoverlay.New(),
		HelpSeen:  helpSeen,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadForRoute(m.Route),
		PollTickCmd(m.Cfg.PollInterval()),
	)
}

func (m *Model) saveUIState() {
	m.StateMgr.SaveUIState(state.UIState{Route: m.Route, HelpSeen: m.HelpSeen})
}
