package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// ISyncQueue records mutations made while offline. Flushing the queue is
// done elsewhere.
type ISyncQueue interface {
	Enqueue(ctx context.Context, op entities.SyncOperation) error
	// Pending lists queued operations, oldest first.
	Pending(ctx context.Context) ([]entities.SyncOperation, error)
}
