package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

var ErrInvalidOperation = errors.New("invalid sync operation")

// SQLiteSyncQueue persists offline mutations in FIFO order.
type SQLiteSyncQueue struct {
	db *sql.DB
}

var _ interfaces.ISyncQueue = (*SQLiteSyncQueue)(nil)

func NewSQLiteSyncQueue(db *sql.DB) *SQLiteSyncQueue {
	return &SQLiteSyncQueue{db: db}
}

func (q *SQLiteSyncQueue) Enqueue(ctx context.Context, op entities.SyncOperation) error {
	if _, ok := entities.ParseDataType(string(op.Type)); !ok {
		return fmt.Errorf("%w: unknown data type %q", ErrInvalidOperation, op.Type)
	}
	if !op.Operation.Valid() {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidOperation, op.Operation)
	}
	payload, err := marshal(op.Data)
	if err != nil {
		return fmt.Errorf("encode sync payload: %w", err)
	}
	queuedAt := op.QueuedAt
	if queuedAt.IsZero() {
		queuedAt = time.Now()
	}
	_, err = q.db.ExecContext(ctx,
		`INSERT INTO sync_queue (data_type, operation, payload, queued_at) VALUES (?, ?, ?, ?)`,
		string(op.Type), string(op.Operation), payload, queuedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("enqueue sync operation: %w", err)
	}
	return nil
}

func (q *SQLiteSyncQueue) Pending(ctx context.Context) ([]entities.SyncOperation, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT seq, data_type, operation, payload, queued_at FROM sync_queue ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list sync queue: %w", err)
	}
	defer rows.Close()

	out := []entities.SyncOperation{}
	for rows.Next() {
		var (
			op       entities.SyncOperation
			dataType string
			action   string
			payload  []byte
			queuedAt int64
		)
		if err := rows.Scan(&op.ID, &dataType, &action, &payload, &queuedAt); err != nil {
			return nil, err
		}
		if err := unmarshal(payload, &op.Data); err != nil {
			return nil, fmt.Errorf("decode sync payload %d: %w", op.ID, err)
		}
		op.Type = entities.DataType(dataType)
		op.Operation = entities.SyncAction(action)
		op.QueuedAt = time.UnixMilli(queuedAt).UTC()
		out = append(out, op)
	}
	return out, rows.Err()
}
