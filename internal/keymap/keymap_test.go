//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"strings"
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"list context", "list", true, 4},
		{"leads context", "leads", true, 1},
		{"campaigns context", "campaigns", true, 1},
		{"search context", "search", true, 1},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoDuplicateSequences(t *testing.T) {
	// Dispatcher lookup must be unambiguous: no two dispatch bindings may
	// share a key sequence.
	seen := make(map[string]Action)
	for _, b := range All {
		if b.Kind == KindNone {
			continue
		}
		for _, seq := range b.Keys {
			if prev, dup := seen[seq]; dup {
				t.Errorf("sequence %q bound to both %q and %q", seq, prev, b.Action)
			}
			seen[seq] = b.Action
		}
	}
}

func TestAll_NavigateBindingsHaveTargets(t *testing.T) {
	for _, b := range All {
		if b.Kind != KindNavigate {
			continue
		}
		if b.Target == "" {
			t.Errorf("navigate binding %q has no target", b.Action)
		}
		if !strings.HasPrefix(b.Target, "/") {
			t.Errorf("navigate binding %q target %q is not a route", b.Action, b.Target)
		}
	}
}

func TestAll_ChordsStartWithLeader(t *testing.T) {
	for _, b := range All {
		for _, seq := range b.Keys {
			parts := strings.Fields(seq)
			if len(parts) < 2 {
				continue
			}
			if len(parts) > 2 {
				t.Errorf("sequence %q has more than two keys", seq)
			}
			if parts[0] != Leader {
				t.Errorf("chord %q does not start with leader %q", seq, Leader)
			}
			if parts[1] == Leader {
				t.Errorf("chord %q repeats the leader; a second leader press must fail to match", seq)
			}
		}
	}
}
