package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for the console tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		admin_logged_in INTEGER NOT NULL DEFAULT 0,
		admin_username  TEXT NOT NULL DEFAULT '',
		created_at      INTEGER NOT NULL,
		expires_at      INTEGER NOT NULL,
		last_seen       INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_admin_username ON sessions(admin_username)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
