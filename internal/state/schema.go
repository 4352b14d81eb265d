package state

import (
	"database/sql"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ui_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			route TEXT NOT NULL,
			help_seen INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}
