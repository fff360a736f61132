package mirror

import (
	"context"
	"database/sql"
	"fmt"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

// SQLiteStore mirrors one entity collection. Records are CBOR-encoded and
// read back in the order they were written.
type SQLiteStore[T entities.Record[T]] struct {
	db       *sql.DB
	dataType entities.DataType
}

var _ interfaces.IKeyValueStore[entities.Estimate] = (*SQLiteStore[entities.Estimate])(nil)

func NewSQLiteStore[T entities.Record[T]](db *sql.DB, dataType entities.DataType) *SQLiteStore[T] {
	return &SQLiteStore[T]{db: db, dataType: dataType}
}

func (s *SQLiteStore[T]) ReadAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM mirror_records WHERE data_type = ? ORDER BY position`,
		string(s.dataType),
	)
	if err != nil {
		return nil, fmt.Errorf("read %s mirror: %w", s.dataType, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec T
		if err := unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode %s mirror record: %w", s.dataType, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// WriteAll replaces the mirrored collection in one transaction. A later
// record with a duplicate id wins.
func (s *SQLiteStore[T]) WriteAll(ctx context.Context, records []T) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM mirror_records WHERE data_type = ?`, string(s.dataType)); err != nil {
		return fmt.Errorf("clear %s mirror: %w", s.dataType, err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO mirror_records (data_type, id, position, payload) VALUES (?, ?, ?, ?)
		ON CONFLICT (data_type, id) DO UPDATE SET position = excluded.position, payload = excluded.payload`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		payload, err := marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s mirror record: %w", s.dataType, err)
		}
		if _, err := stmt.ExecContext(ctx, string(s.dataType), rec.RecordID(), i, payload); err != nil {
			return fmt.Errorf("write %s mirror record: %w", s.dataType, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore[T]) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mirror_records WHERE data_type = ?`, string(s.dataType)); err != nil {
		return fmt.Errorf("clear %s mirror: %w", s.dataType, err)
	}
	return nil
}
