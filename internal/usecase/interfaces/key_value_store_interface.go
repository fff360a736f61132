package interfaces

import "context"

// IKeyValueStore is the local mirror of one entity collection, keyed by
// record id. WriteAll replaces the whole collection.
type IKeyValueStore[T any] interface {
	ReadAll(ctx context.Context) ([]T, error)
	WriteAll(ctx context.Context, records []T) error
	Clear(ctx context.Context) error
}
