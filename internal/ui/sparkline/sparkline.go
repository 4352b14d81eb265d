// Package sparkline renders a compact bar chart of a daily series.
package sparkline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmercier/leadline/internal/ui/styles"
)

var ticks = []rune("▁▂▃▄▅▆▇█")

// Render returns a one-line sparkline of values, newest rightmost. The series
// is truncated from the left when it exceeds width.
func Render(values []int, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return strings.Repeat(string(ticks[0]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := v * (len(ticks) - 1) / maxVal
		b.WriteRune(ticks[idx])
	}
	return b.String()
}

// RenderGradient renders the sparkline with the theme's accent gradient.
func RenderGradient(values []int, width int) string {
	line := Render(values, width)
	if line == "" {
		return ""
	}
	t := styles.T()
	return styles.ApplyGradient(line, lipgloss.Color(t.FgSubtle), lipgloss.Color(t.Primary))
}
