package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient. Blending runs
// in HCL space so the transition is perceptually uniform.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters, not runes: a cluster is one terminal cell group.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	c1, _ := colorful.MakeColor(toRGBA(from))
	c2, _ := colorful.MakeColor(toRGBA(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		blended := c1.BlendHcl(c2, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(blended.Hex())).Render(cluster))
	}
	return b.String()
}

// toRGBA converts a lipgloss hex color to a color.Color, falling back to a
// neutral gray for ANSI palette values.
func toRGBA(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
