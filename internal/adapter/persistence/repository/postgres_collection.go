package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

type sqlOpenFunc func(driverName, dsn string) (*sql.DB, error)

// PostgresCollection stores one entity collection as JSONB documents, one
// row per record. The table is created on first use.
type PostgresCollection[T entities.Record[T]] struct {
	dsn       string
	tableName string
	openDB    sqlOpenFunc

	mu    sync.Mutex
	ready bool
	owned bool
	db    *sql.DB
}

var _ interfaces.IRemoteCollection[entities.Invoice] = (*PostgresCollection[entities.Invoice])(nil)

// NewPostgresCollection uses db when non-nil, otherwise it opens dsn lazily.
func NewPostgresCollection[T entities.Record[T]](db *sql.DB, dsn, tableName string) *PostgresCollection[T] {
	return &PostgresCollection[T]{
		dsn:       strings.TrimSpace(dsn),
		tableName: tableName,
		openDB:    sql.Open,
		db:        db,
	}
}

func (r *PostgresCollection[T]) Select(ctx context.Context) ([]T, error) {
	if err := r.ensureReady(ctx); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT data FROM %s ORDER BY created_at, id", quoteIdentifier(r.tableName))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec T
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", r.tableName, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Insert writes all records in one transaction. A row that already holds
// the same document is a replayed insert and is left as is. A row with
// different content fails the whole batch with a conflict.
func (r *PostgresCollection[T]) Insert(ctx context.Context, records []T) ([]T, error) {
	if err := r.ensureReady(ctx); err != nil {
		return nil, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	table := quoteIdentifier(r.tableName)
	insert := fmt.Sprintf("INSERT INTO %s (id, data) VALUES ($1, $2::jsonb) ON CONFLICT (id) DO NOTHING", table)
	current := fmt.Sprintf("SELECT data FROM %s WHERE id = $1", table)
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		res, err := tx.ExecContext(ctx, insert, rec.RecordID(), string(payload))
		if err != nil {
			return nil, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			continue
		}

		var stored []byte
		if err := tx.QueryRowContext(ctx, current, rec.RecordID()).Scan(&stored); err != nil {
			return nil, err
		}
		var existing T
		if err := json.Unmarshal(stored, &existing); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", r.tableName, err)
		}
		if !sameDocument(rec, existing) {
			return nil, recordConflict(r.tableName, rec.RecordID())
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return records, nil
}

// Update merges patch into the stored document. JSON null values are kept
// as nulls, which decode to zero values.
func (r *PostgresCollection[T]) Update(ctx context.Context, id string, patch entities.Patch) error {
	if err := r.ensureReady(ctx); err != nil {
		return err
	}
	clean := make(map[string]any, len(patch))
	for k, v := range patch {
		if k != "id" {
			clean[k] = v
		}
	}
	if len(clean) == 0 {
		return entities.ErrEmptyPatch
	}
	payload, err := json.Marshal(clean)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET data = data || $2::jsonb, updated_at = NOW() WHERE id = $1", quoteIdentifier(r.tableName))
	res, err := r.db.ExecContext(ctx, query, id, string(payload))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return recordNotFound(r.tableName, id)
	}
	return nil
}

// Delete is idempotent: deleting a missing record succeeds.
func (r *PostgresCollection[T]) Delete(ctx context.Context, id string) error {
	if err := r.ensureReady(ctx); err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", quoteIdentifier(r.tableName))
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// ensureReady opens the database and creates the table. A failed attempt
// is retried on the next call.
func (r *PostgresCollection[T]) ensureReady(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}
	if r.db == nil {
		if r.dsn == "" {
			return fmt.Errorf("postgres collection %s: dsn is required", r.tableName)
		}
		db, err := r.openDB("postgres", r.dsn)
		if err != nil {
			return err
		}
		r.db = db
		r.owned = true
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, quoteIdentifier(r.tableName))
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return err
	}
	r.ready = true
	return nil
}

// Close closes the database when the collection opened it itself.
func (r *PostgresCollection[T]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil || !r.owned {
		return nil
	}
	return r.db.Close()
}
