package keymap

// Leader is the first keystroke of every two-key navigation chord. By itself
// it does nothing except open a short completion window.
const Leader = "g"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string // sequences: single keys ("?") or space-joined chords ("g d")
	Kind        Kind
	Target      string // route for KindNavigate bindings
	Description string
	Context     string // "global", "list", "leads", "campaigns", "search"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global dispatcher bindings
	{ActionGoDashboard, []string{"g d"}, KindNavigate, "/dashboard", "Go to dashboard", "global"},
	{ActionGoLeads, []string{"g l"}, KindNavigate, "/leads", "Go to leads", "global"},
	{ActionGoBookings, []string{"g b"}, KindNavigate, "/bookings", "Go to bookings", "global"},
	{ActionGoCampaigns, []string{"g c"}, KindNavigate, "/campaigns", "Go to campaigns", "global"},
	{ActionFocusSearch, []string{"/"}, KindFocusSearch, "", "Search current page", "global"},
	{ActionHelp, []string{"?"}, KindShowHelp, "", "Toggle keyboard help", "global"},
	{ActionEscape, []string{"esc"}, KindEscape, "", "Close overlay / blur input / cancel chord", "global"},

	// Global keys handled by the app, listed for help only
	{ActionQuit, []string{"q", "ctrl+c"}, KindNone, "", "Quit", "global"},
	{ActionNextPage, []string{"tab"}, KindNone, "", "Next page", "global"},
	{ActionRefresh, []string{"r"}, KindNone, "", "Refresh current page", "global"},

	// List movement
	{ActionMoveDown, []string{"j", "down"}, KindNone, "", "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, KindNone, "", "Move up", "list"},
	{ActionPageDown, []string{"pgdown"}, KindNone, "", "Page down", "list"},
	{ActionPageUp, []string{"pgup"}, KindNone, "", "Page up", "list"},
	{ActionJumpStart, []string{"home"}, KindNone, "", "First row", "list"},
	{ActionJumpEnd, []string{"end"}, KindNone, "", "Last row", "list"},

	// Leads page
	{ActionCycleLeadStatus, []string{"s"}, KindNone, "", "Cycle lead status", "leads"},

	// Campaigns page
	{ActionToggleCampaign, []string{"p"}, KindNone, "", "Pause/resume campaign", "campaigns"},

	// Search input
	{ActionClearSearchKeyword, []string{"ctrl+u"}, KindNone, "", "Clear query", "search"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
