package input

import (
	"time"

	"github.com/tmercier/leadline/internal/keymap"
)

// ChordWindow is how long a pending leader waits for its completion key.
const ChordWindow = 800 * time.Millisecond

// KeyEscape is the universal abort key.
const KeyEscape = "esc"

// CommandKind identifies the side effect a keystroke resolved to.
type CommandKind int

const (
	// CmdNone means the keystroke is not a dispatcher command; the caller
	// should let it reach whatever component normally handles it.
	CmdNone CommandKind = iota

	// CmdStartChord means a leader key opened a completion window. The caller
	// must schedule a timeout carrying Command.Gen.
	CmdStartChord

	// CmdNavigate means a chord resolved to the route in Command.Target.
	CmdNavigate

	// CmdFocusSearch moves focus to the search input.
	CmdFocusSearch

	// CmdToggleHelp toggles the help overlay.
	CmdToggleHelp

	// CmdCloseHelp closes the help overlay (Escape while it is open).
	CmdCloseHelp

	// CmdBlur removes focus from the focused text input (Escape while typing).
	CmdBlur

	// CmdCancelChord means Escape aborted a pending chord.
	CmdCancelChord
)

// Command is the dispatcher's verdict on one keystroke. At most one side
// effect per keystroke, never more.
type Command struct {
	Kind     CommandKind
	Target   string // route, for CmdNavigate
	Gen      int    // chord generation, for CmdStartChord
	Consumed bool   // true if the keystroke must not reach other components
}

// Machine is the chord state machine. It is either idle or awaiting the
// completion key of a pending leader; there is no other state.
//
// The pending timer is represented by a generation counter rather than a
// timer handle: starting a chord bumps the generation and the caller schedules
// a deferred Expire(gen) for it, while every resolution path (completion,
// unrelated key, Escape, expiry) clears the leader and bumps the generation
// again so an already-scheduled expiry can never act on state that has moved
// on.
//
// Machine is not safe for concurrent use; the host event loop serializes all
// keystrokes and timeout deliveries.
type Machine struct {
	table   *keymap.Table
	pending string // pending leader key, "" when idle
	gen     int
}

// NewMachine creates a machine resolving against the given table.
func NewMachine(table *keymap.Table) *Machine {
	return &Machine{table: table}
}

// Idle reports whether no chord is pending.
func (m *Machine) Idle() bool {
	return m.pending == ""
}

// Pending returns the pending leader key, or "" when idle.
func (m *Machine) Pending() string {
	return m.pending
}

// Press consumes one classified keystroke and returns the command it resolved
// to. Transitions are evaluated in strict priority order; every input either
// matches a transition or is ignored, and any ambiguous input returns the
// machine to idle within one keystroke.
func (m *Machine) Press(key string, env Env) Command {
	// 1. Escape, unconditionally first. It bypasses the classifier gate so
	// that typing contexts can always be escaped.
	if key == KeyEscape {
		return m.pressEscape(env)
	}

	// 2. Classifier gate: keystrokes in a text-entry context are literal text.
	if !ShouldDispatch(key, env) {
		return Command{}
	}

	// 3. Modifier gate: preserve native terminal/OS shortcuts.
	if env.ModifierHeld {
		return Command{}
	}

	// 4. Leader initiation.
	if m.pending == "" && key == keymap.Leader {
		m.pending = key
		m.gen++
		return Command{Kind: CmdStartChord, Gen: m.gen, Consumed: true}
	}

	// 5. Chord completion. Matched or not, the chord resolves now; an
	// unregistered second key silently cancels rather than erroring.
	if m.pending != "" {
		seq := m.pending + " " + key
		m.resolve()
		if b, ok := m.table.Lookup(seq); ok && b.Kind == keymap.KindNavigate {
			return Command{Kind: CmdNavigate, Target: b.Target, Consumed: true}
		}
		return Command{}
	}

	// 6. Standalone single-key commands.
	if b, ok := m.table.Lookup(key); ok {
		switch b.Kind {
		case keymap.KindFocusSearch:
			return Command{Kind: CmdFocusSearch, Consumed: true}
		case keymap.KindShowHelp:
			return Command{Kind: CmdToggleHelp, Consumed: true}
		}
	}

	// 7. Not a dispatcher key.
	return Command{}
}

// pressEscape resolves the Escape priority chain: close the help overlay,
// else blur the focused input, else cancel a pending chord. Only the first
// applicable effect fires.
func (m *Machine) pressEscape(env Env) Command {
	if env.HelpVisible {
		return Command{Kind: CmdCloseHelp, Consumed: true}
	}
	if env.EditableFocused {
		return Command{Kind: CmdBlur, Consumed: true}
	}
	if m.pending != "" {
		m.resolve()
		return Command{Kind: CmdCancelChord, Consumed: true}
	}
	return Command{}
}

// Expire delivers a chord timeout. It reverts an abandoned chord to idle and
// reports whether it did; a timeout whose generation has already been
// superseded is a no-op.
func (m *Machine) Expire(gen int) bool {
	if m.pending == "" || gen != m.gen {
		return false
	}
	m.resolve()
	return true
}

// resolve clears the pending leader and invalidates its timeout in one step,
// so no later event can observe a stale chord.
func (m *Machine) resolve() {
	m.pending = ""
	m.gen++
}
