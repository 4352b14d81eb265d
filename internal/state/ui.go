package state

import (
	"database/sql"
	"errors"
	"time"
)

// UIState is the persisted slice of UI state.
type UIState struct {
	Route    string // last active route ("/dashboard", "/leads", ...)
	HelpSeen bool   // the help overlay has been opened at least once
}

func getUIState(db *sql.DB) (*UIState, error) {
	row := db.QueryRow(`SELECT route, help_seen FROM ui_state WHERE id = 1`)

	var state UIState
	var helpSeen int
	err := row.Scan(&state.Route, &helpSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.HelpSeen = helpSeen != 0
	return &state, nil
}

func saveUIState(db *sql.DB, state UIState) error {
	helpSeen := 0
	if state.HelpSeen {
		helpSeen = 1
	}
	_, err := db.Exec(`
		INSERT INTO ui_state (id, route, help_seen, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			route = excluded.route,
			help_seen = excluded.help_seen,
			updated_at = excluded.updated_at
	`, state.Route, helpSeen, time.Now().Unix())
	return err
}
