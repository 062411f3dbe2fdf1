package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telshop/backoffice/internal/catalog/domain"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	ctx := context.Background()

	// missing file reads as an empty catalog
	items, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	want := []domain.Product{
		{ID: "1", SKU: "samsung-a54-aaa", Brand: "samsung", Model: "A54", Quality: "AAA", Price: 150, Stock: 10, Tags: []string{"screen"}, Active: true},
		{ID: "2", SKU: "apple-13-orig", Brand: "apple", Model: "13", Quality: "Orig", Price: 420, Stock: 2, Active: true},
	}
	require.NoError(t, store.ReplaceAll(ctx, want))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// no leftover temp file after the rename
	_, err = os.Stat(filepath.Join(dir, productsFile+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStoreReplaceAllNilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.ReplaceAll(ctx, nil))

	raw, err := os.ReadFile(filepath.Join(dir, productsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSONStoreViableImportRow(t *testing.T) {
	store := &JSONStore{}

	assert.True(t, store.ViableImportRow(domain.Product{Model: "A54"}))
	assert.True(t, store.ViableImportRow(domain.Product{Quality: "AAA"}))
	assert.True(t, store.ViableImportRow(domain.Product{Model: "A54", Price: 0}))
	assert.False(t, store.ViableImportRow(domain.Product{Brand: "samsung", Price: 100}))
	assert.False(t, store.ViableImportRow(domain.Product{Model: "  ", Quality: "\t"}))
}
