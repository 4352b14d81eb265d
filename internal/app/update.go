package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/errmsg"
	"github.com/tmercier/leadline/internal/input"
	"github.com/tmercier/leadline/internal/ui/campaignlist"
	"github.com/tmercier/leadline/internal/ui/headerbar"
	"github.com/tmercier/leadline/internal/ui/helpoverlay"
	"github.com/tmercier/leadline/internal/ui/leadlist"
	"github.com/tmercier/leadline/internal/ui/searchbar"
	"github.com/tmercier/leadline/internal/ui/statusbar"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case InputMessage:
		return m.handleInputMsg(msg)

	case DataMessage:
		return m.handleDataMsg(msg)

	case searchbar.QueryChangedMsg:
		m.applyFilter(msg.Query)
		return m, nil

	case searchbar.SubmittedMsg:
		// Filter stays applied; focus was already released by the bar.
		return m, nil

	case helpoverlay.CloseMsg:
		m.HelpVisible = false
		return m, nil

	case leadlist.StatusCycleRequestedMsg:
		return m, m.updateLeadStatusCmd(msg.Lead.ID, msg.NextStatus)

	case campaignlist.ToggleRequestedMsg:
		return m, m.setCampaignPausedCmd(msg.Campaign.ID, msg.Paused)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	contentHeight := msg.Height - headerbar.Height - statusbar.Height - searchLineHeight
	m.Dashboard.SetSize(msg.Width, contentHeight)
	m.Leads.SetSize(msg.Width, contentHeight)
	m.Bookings.SetSize(msg.Width, contentHeight)
	m.Campaigns.SetSize(msg.Width, contentHeight)
	m.Search.SetWidth(msg.Width)
	m.Help.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleKeyMsg runs every keystroke through the dispatcher first; only
// unconsumed keys reach the overlay, the search input, and the pages.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error banner - any key dismisses it
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		return m, nil
	}

	key := msg.String()
	env := input.Env{
		EditableFocused: m.Search.Focused(),
		HelpVisible:     m.HelpVisible,
		ModifierHeld:    isModified(msg),
	}

	switch cmd := m.Machine.Press(key, env); cmd.Kind {
	case input.CmdStartChord:
		return m, ChordTimeoutCmd(cmd.Gen)

	case input.CmdNavigate:
		return m.navigate(cmd.Target)

	case input.CmdFocusSearch:
		return m, m.Search.Focus()

	case input.CmdToggleHelp:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Help.Reset()
			if !m.HelpSeen {
				m.HelpSeen = true
				m.saveUIState()
			}
		}
		return m, nil

	case input.CmdCloseHelp:
		m.HelpVisible = false
		return m, nil

	case input.CmdBlur:
		m.Search.Blur()
		return m, nil

	case input.CmdCancelChord:
		return m, nil

	case input.CmdNone:
		if cmd.Consumed {
			return m, nil
		}
	}

	// Overlay swallows everything while visible.
	if m.HelpVisible {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	// Focused search input gets keystrokes as literal text.
	if m.Search.Focused() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	if model, cmd, handled := m.handleGlobalKey(key); handled {
		return model, cmd
	}

	return m.updateActivePage(msg)
}

// handleGlobalKey covers app-level keys outside the dispatcher's table.
func (m Model) handleGlobalKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit, true
	case "tab":
		model, cmd := m.navigate(m.nextRoute())
		return model, cmd, true
	case "r":
		return m, m.loadForRoute(m.Route), true
	}
	return m, nil, false
}

func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Route {
	case RouteLeads:
		m.Leads, cmd = m.Leads.Update(msg)
	case RouteBookings:
		m.Bookings, cmd = m.Bookings.Update(msg)
	case RouteCampaigns:
		m.Campaigns, cmd = m.Campaigns.Update(msg)
	}
	return m, cmd
}

func (m Model) handleInputMsg(msg InputMessage) (tea.Model, tea.Cmd) {
	if timeout, ok := msg.(ChordTimeoutMsg); ok {
		// A superseded generation means the chord already resolved; the
		// machine ignores it and so do we.
		m.Machine.Expire(timeout.Gen)
	}
	return m, nil
}

func (m Model) handleDataMsg(msg DataMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PollTickMsg:
		return m, tea.Batch(
			m.loadForRoute(m.Route),
			PollTickCmd(m.Cfg.PollInterval()),
		)

	case StatsLoadedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpLoadStats, msg.Err)
		}
		m.Dashboard.SetStats(*msg.Stats)
		return m.dataFresh()

	case LeadsLoadedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpLoadLeads, msg.Err)
		}
		m.Leads.SetLeads(msg.Leads)
		return m.dataFresh()

	case BookingsLoadedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpLoadBookings, msg.Err)
		}
		m.Bookings.SetBookings(msg.Bookings)
		return m.dataFresh()

	case CampaignsLoadedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpLoadCampaigns, msg.Err)
		}
		m.Campaigns.SetCampaigns(msg.Campaigns)
		return m.dataFresh()

	case LeadUpdatedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpUpdateLead, msg.Err)
		}
		return m, m.loadLeadsCmd()

	case CampaignUpdatedMsg:
		if msg.Err != nil {
			return m.dataError(errmsg.OpToggleCampaign, msg.Err)
		}
		return m, m.loadCampaignsCmd()
	}
	return m, nil
}

func (m Model) dataError(op errmsg.Op, err error) (tea.Model, tea.Cmd) {
	m.ErrorMsg = errmsg.Format(op, err)
	return m, nil
}

func (m Model) dataFresh() (tea.Model, tea.Cmd) {
	m.ErrorMsg = ""
	m.LastPoll = time.Now()
	return m, nil
}

// isModified reports whether a modifier is held with the key, so native
// terminal and OS shortcuts never reach the dispatcher.
func isModified(msg tea.KeyMsg) bool {
	return msg.Alt || strings.HasPrefix(msg.String(), "ctrl+")
}
