// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionNextPage    Action = "next_page"
	ActionRefresh     Action = "refresh"
	ActionFocusSearch Action = "focus_search"
	ActionHelp        Action = "help"
	ActionEscape      Action = "escape"

	// Navigation chords (leader + key)
	ActionGoDashboard Action = "go_dashboard"
	ActionGoLeads     Action = "go_leads"
	ActionGoBookings  Action = "go_bookings"
	ActionGoCampaigns Action = "go_campaigns"

	// List actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Page-specific actions
	ActionCycleLeadStatus    Action = "cycle_lead_status"
	ActionToggleCampaign     Action = "toggle_campaign"
	ActionClearSearchKeyword Action = "clear_search"
)

// Kind classifies what the dispatcher does when a binding resolves.
type Kind int

const (
	// KindNone marks bindings that exist for help display only; they are
	// handled by page models, not by the global dispatcher.
	KindNone Kind = iota

	// KindNavigate switches to the route in Binding.Target.
	KindNavigate

	// KindFocusSearch moves focus to the search input.
	KindFocusSearch

	// KindShowHelp toggles the help overlay.
	KindShowHelp

	// KindEscape is the universal abort key.
	KindEscape
)
