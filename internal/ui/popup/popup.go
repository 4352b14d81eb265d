// Package popup renders centered overlay boxes on top of the base view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tmercier/leadline/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge = SizeConfig{WidthPct: 80, HeightPct: 70}
	SizeAuto  = SizeConfig{}
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2)

	box := boxStyle.Render(content)
	return Center(box, screenW, screenH)
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxHeight := len(lines)
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := max((termHeight-boxHeight)/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	// Auto-fit: calculate from content
	contentWidth := maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 && contentWidth > size.MaxWidth {
		contentWidth = size.MaxWidth
	}
	if maxWidth := screenW - 4; contentWidth > maxWidth {
		contentWidth = maxWidth
	}

	contentHeight := strings.Count(content, "\n") + 1 + 4 // padding + border
	if maxHeight := screenH - 4; contentHeight > maxHeight {
		contentHeight = maxHeight
	}

	return contentWidth, contentHeight
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// Compose overlays content on top of a base view. Non-space characters in the
// overlay replace the base at the same position. ANSI-aware: styled text in
// both layers survives the splice.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		// Visible bounds of the overlay content on this line.
		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := ansi.StringWidth(trimmed)

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// base[0:startCol] + overlay + base[endCol:]. Cutting through a wide
		// character can shift widths, so pad/trim to keep columns aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		prefixWidth := ansi.StringWidth(ansi.Strip(prefix))
		if prefixWidth < startCol {
			prefix += strings.Repeat(" ", startCol-prefixWidth)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			suffixWidth := ansi.StringWidth(ansi.Strip(suffix))
			expected := width - endCol
			if suffixWidth > expected {
				suffix = " " + ansi.Cut(suffix, suffixWidth-expected+1, suffixWidth)
			} else if suffixWidth < expected {
				result += strings.Repeat(" ", expected-suffixWidth)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
