// Package mirror keeps the offline copy of every entity collection and the
// queue of mutations made while offline, both in an embedded SQLite file.
package mirror

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS mirror_records (
	data_type TEXT NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (data_type, id)
);
CREATE TABLE IF NOT EXISTS sync_queue (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	data_type TEXT NOT NULL,
	operation TEXT NOT NULL,
	payload BLOB NOT NULL,
	queued_at INTEGER NOT NULL
);
`

// Migrate creates the mirror tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate mirror schema: %w", err)
	}
	return nil
}
