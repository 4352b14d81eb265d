// Package input implements the global keyboard dispatcher: it decides whether
// a keystroke belongs to a focused text input or to the application, and
// resolves leader-key chords against the shortcut table.
package input

// Env is a snapshot of the UI context for a single keystroke. It must be
// rebuilt from live state on every event; cached focus state goes stale the
// moment a popup opens or an input blurs.
type Env struct {
	// EditableFocused is true while a text-entry component has focus and
	// keystrokes should be treated as literal text.
	EditableFocused bool

	// HelpVisible is true while the help overlay is shown.
	HelpVisible bool

	// ModifierHeld is true when a platform modifier (ctrl/alt/cmd) is held,
	// so terminal and OS shortcuts keep their native meaning.
	ModifierHeld bool
}

// ShouldDispatch reports whether command dispatch should proceed for a
// keystroke. Text-entry contexts block dispatch, with one exception: Escape
// always dispatches so the user can blur an input or close an overlay while
// typing.
func ShouldDispatch(key string, env Env) bool {
	if key == KeyEscape {
		return true
	}
	return !env.EditableFocused
}
