// Package dashboard renders the summary page: stat cards and a lead sparkline.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tmercier/leadline/internal/api"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/sparkline"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// Model holds the dashboard page state.
type Model struct {
	ui.Base
	stats   api.Stats
	loaded  bool
	fetched time.Time
}

// New creates an empty dashboard page.
func New() Model {
	return Model{}
}

// SetStats replaces the displayed summary.
func (m *Model) SetStats(stats api.Stats) {
	m.stats = stats
	m.loaded = true
	m.fetched = time.Now()
}

// View renders the dashboard.
func (m Model) View() string {
	t := styles.T()
	if !m.loaded {
		return t.S().Muted.Render("loading…")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Leads", humanize.Comma(int64(m.stats.TotalLeads)), fmt.Sprintf("%d today", m.stats.NewToday)),
		m.card("Bookings", humanize.Comma(int64(m.stats.BookingsThisWeek)), "this week"),
		m.card("Response rate", fmt.Sprintf("%.0f%%", m.stats.ResponseRate*100), "of leads answered"),
		m.card("Median response", responseLabel(m.stats.MedianResponseSec), "to first reply"),
	)

	var sb strings.Builder
	sb.WriteString(cards)
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Title.Render("Leads per day"))
	sb.WriteString("\n")
	sb.WriteString(m.seriesView())
	return sb.String()
}

func (m Model) card(title, value, sub string) string {
	t := styles.T()
	body := t.S().Muted.Render(title) + "\n" +
		t.S().Accent.Render(value) + "\n" +
		t.S().Subtle.Render(sub)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		Width(cardWidth(m.Width())).
		Render(body)
}

func cardWidth(total int) int {
	// Four cards side by side, each with a two-column border.
	return max(total/4-2, 16)
}

func (m Model) seriesView() string {
	if len(m.stats.Series) == 0 {
		return styles.T().S().Muted.Render("no data yet")
	}

	values := make([]int, len(m.stats.Series))
	for i, d := range m.stats.Series {
		values[i] = d.Count
	}

	width := min(len(values), max(m.Width()-4, 10))
	line := sparkline.RenderGradient(values, width)

	first := m.stats.Series[0].Date
	last := m.stats.Series[len(m.stats.Series)-1].Date
	t := styles.T()
	return line + "\n" + t.S().Subtle.Render(first+" … "+last)
}

// responseLabel formats a duration in seconds the way people read it:
// "42s", "3m", "1h 10m".
func responseLabel(secs int) string {
	d := time.Duration(secs) * time.Second
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", secs)
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		h := int(d.Hours())
		rem := int(d.Minutes()) - h*60
		if rem == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, rem)
	}
}
