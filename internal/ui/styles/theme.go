// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Teal - focused items, active states
	Secondary lipgloss.Color // Amber - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Accent  lipgloss.Style // active tab, pending chord indicator
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#2dd4bf"),
	Secondary: lipgloss.Color("#f59e0b"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#2dd4bf"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f59e0b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
