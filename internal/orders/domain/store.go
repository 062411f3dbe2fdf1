package domain

import "context"

// Store owns the persisted order collection with the same whole-snapshot
// semantics as the catalog store.
type Store interface {
	LoadAll(ctx context.Context) ([]Order, error)
	ReplaceAll(ctx context.Context, items []Order) error
}
