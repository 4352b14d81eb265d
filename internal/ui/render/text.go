// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters and replaces invalid UTF-8 bytes.
// Lead names and campaign labels come from the backend unescaped; a stray
// control byte would corrupt the terminal layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		if r == ' ' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 { // NBSP
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Uses runewidth for proper handling of wide characters.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}
