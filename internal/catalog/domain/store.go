package domain

import "context"

// Store owns the persisted product collection. Persistence is whole-snapshot:
// mutating flows load everything, reconcile in memory and write everything
// back. There is no partial write.
type Store interface {
	LoadAll(ctx context.Context) ([]Product, error)
	ReplaceAll(ctx context.Context, items []Product) error

	// ViableImportRow reports whether a bulk-import row carries enough data
	// to be worth keeping; the threshold differs per backend.
	ViableImportRow(p Product) bool
}
