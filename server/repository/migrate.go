package repository

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist. The primary key on
// (room_id, user_id) enforces the one-record-per-pair invariant at the
// storage boundary.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			owner_id INTEGER NOT NULL,
			is_permanent INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS connections (
			room_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			connection_id TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (room_id, user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_connections_connection_id ON connections (connection_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
