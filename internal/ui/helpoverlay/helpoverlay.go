// Package helpoverlay provides a scrollable popup listing key bindings.
package helpoverlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmercier/leadline/internal/keymap"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/popup"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// CloseMsg is emitted when the overlay asks to be dismissed.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"list",
	"leads",
	"campaigns",
	"search",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":    "Global",
	"list":      "Lists",
	"leads":     "Leads",
	"campaigns": "Campaigns",
	"search":    "Search",
}

// Model holds the state of the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help overlay listing every registered binding.
func New() Model {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}
	return Model{bindings: bindings}
}

// Reset scrolls back to the top. Called each time the overlay opens.
func (m *Model) Reset() {
	m.scrollOffset = 0
}

// Update handles scrolling. Close keys are routed here by the app only when
// they are not already claimed by the global dispatcher.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the overlay centered over the given screen size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	return popup.RenderBordered(m.render(), m.Width(), m.Height(), popup.SizeAuto)
}

func (m Model) render() string {
	lines := strings.Split(m.buildContent(), "\n")

	// Width from all lines, not just visible, so scrolling doesn't resize the box.
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	visibleHeight := m.visibleHeight()
	start := min(m.scrollOffset, len(lines))
	end := min(start+visibleHeight, len(lines))
	visible := lines[start:end]

	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	t := styles.T()
	var sb strings.Builder
	sb.WriteString(t.S().Title.Render("Keyboard Shortcuts"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Subtle.Render(m.footer()))
	return sb.String()
}

func (m Model) buildContent() string {
	t := styles.T()
	keyStyle := t.S().Accent
	descStyle := t.S().Base
	headerStyle := t.S().Warning.Bold(true)
	sepStyle := t.S().Subtle

	maxKeyWidth := 0
	for _, b := range m.bindings {
		if w := len(keysLabel(b)); w > maxKeyWidth {
			maxKeyWidth = w
		}
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(sepStyle.Render(strings.Repeat("─", maxKeyWidth+20)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		key := keysLabel(b)
		sb.WriteString(keyStyle.Render(key + strings.Repeat(" ", maxKeyWidth-len(key))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func keysLabel(b keymap.Binding) string {
	return strings.Join(b.Keys, ", ")
}

func (m Model) footer() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Room for popup chrome: title, footer, borders, margins.
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
