package input

import "testing"

func TestShouldDispatch(t *testing.T) {
	tests := []struct {
		name string
		key  string
		env  Env
		want bool
	}{
		{"plain key, nothing focused", "g", Env{}, true},
		{"plain key, editable focused", "g", Env{EditableFocused: true}, false},
		{"slash, editable focused", "/", Env{EditableFocused: true}, false},
		{"escape bypasses editable gate", KeyEscape, Env{EditableFocused: true}, true},
		{"escape, nothing focused", KeyEscape, Env{}, true},
		{"help visible does not block dispatch", "?", Env{HelpVisible: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldDispatch(tt.key, tt.env); got != tt.want {
				t.Errorf("ShouldDispatch(%q, %+v) = %v, want %v", tt.key, tt.env, got, tt.want)
			}
		})
	}
}
