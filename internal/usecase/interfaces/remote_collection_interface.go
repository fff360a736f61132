package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// IRemoteCollection abstracts the remote data store for one entity
// collection. Errors are returned raw; callers classify them.
//
// Implementations:
//   - DynamoDB table per collection (default)
//   - PostgreSQL JSONB document table per collection
type IRemoteCollection[T any] interface {
	Select(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, records []T) ([]T, error)
	Update(ctx context.Context, id string, patch entities.Patch) error
	Delete(ctx context.Context, id string) error
}
