package keymap

// Table maps key sequences to dispatcher bindings.
//
// Only bindings with a dispatch Kind participate in lookup; KindNone bindings
// belong to page models and are excluded so they cannot shadow a chord.
type Table struct {
	bySeq    map[string]Binding  // sequence ("g d", "/") -> binding
	byAction map[Action][]string // action -> sequences (for help/documentation)
}

// NewTable creates a table from bindings.
func NewTable(bindings []Binding) *Table {
	t := &Table{
		bySeq:    make(map[string]Binding),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		if b.Kind == KindNone {
			continue
		}
		for _, seq := range b.Keys {
			if _, dup := t.bySeq[seq]; dup {
				// Sequence lookup must be unambiguous; first binding wins.
				continue
			}
			t.bySeq[seq] = b
			t.byAction[b.Action] = append(t.byAction[b.Action], seq)
		}
	}
	return t
}

// Default returns a table over the full binding set.
func Default() *Table {
	return NewTable(All)
}

// Lookup returns the binding for an exact sequence, if registered.
// A sequence with no match is not an error; the keystroke is simply not
// dispatched.
func (t *Table) Lookup(seq string) (Binding, bool) {
	b, ok := t.bySeq[seq]
	return b, ok
}

// KeysFor returns the sequences bound to an action.
func (t *Table) KeysFor(action Action) []string {
	return t.byAction[action]
}
