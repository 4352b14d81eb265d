// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses whitespace runs to a single space and trims
// leading/trailing whitespace.
func NormalizeWhitespace(s string) string {
	re := regexp.MustCompile(`\s+`)
	return strings.TrimSpace(re.ReplaceAllString(s, " "))
}

// MeasureWidth returns the visual width of a string, accounting for wide
// characters and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine reports whether any line of the output contains substr.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing substr, or the empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
