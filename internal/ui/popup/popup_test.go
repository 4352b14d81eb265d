package popup

import (
	"strings"
	"testing"
)

func TestCenter_PadsTopAndLeft(t *testing.T) {
	out := Center("ab\ncd", 10, 6)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected top padding plus content, got %d lines", len(lines))
	}

	// Content lines are indented to horizontally center the box.
	for _, line := range lines {
		if strings.Contains(line, "ab") && !strings.HasPrefix(line, "    ") {
			t.Errorf("content line %q not centered", line)
		}
	}
}

func TestCenter_OversizedContentNotPadded(t *testing.T) {
	out := Center("wider than the terminal", 5, 1)
	if strings.HasPrefix(out, " ") {
		t.Error("oversized content should not get negative padding")
	}
}

func TestCompose_OverlayReplacesBase(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")
	overlay := "\n   [ok]\n"

	out := Compose(base, overlay, 10, 3)
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[1], "[ok]") {
		t.Fatalf("overlay content missing from line 1: %q", lines[1])
	}
	// Base content outside the overlay bounds survives.
	if !strings.HasPrefix(lines[1], "...") {
		t.Errorf("base prefix clobbered: %q", lines[1])
	}
	if lines[0] != ".........." {
		t.Errorf("untouched line changed: %q", lines[0])
	}
}

func TestCompose_EmptyOverlayLinesLeaveBase(t *testing.T) {
	base := "aaaa\nbbbb"
	out := Compose(base, "\n\n", 4, 2)
	if !strings.Contains(out, "aaaa") || !strings.Contains(out, "bbbb") {
		t.Errorf("visually empty overlay must not modify base, got %q", out)
	}
}

func TestRenderBordered_AutoFit(t *testing.T) {
	out := RenderBordered("hello", 40, 12, SizeAuto)

	if !strings.Contains(out, "hello") {
		t.Error("content missing from bordered popup")
	}
	if !strings.Contains(out, "─") {
		t.Error("border missing from popup")
	}
}
