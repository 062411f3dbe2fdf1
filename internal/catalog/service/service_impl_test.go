package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/catalog/repository"
	"go.uber.org/zap"
)

func newService(t *testing.T) domain.Service {
	t.Helper()
	store, err := repository.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{Log: zap.NewNop(), Store: store, GenID: node})
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	v, created, err := svc.Upsert(ctx, map[string]any{
		"brand": "Samsung", "model": "A54", "quality": "AAA",
		"price": 100, "stock": 5, "vendor": "SupplierX",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "samsung-a54-aaa", v.SKU)
	assert.NotEmpty(t, v.ID)

	v2, created, err := svc.Upsert(ctx, map[string]any{
		"brand": "samsung", "model": " A54 ", "quality": "aaa",
		"price": 150, "stock": 10, "vendor": "SupplierY",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, v.ID, v2.ID)
	assert.Equal(t, 15, v2.Stock)
	assert.Equal(t, 150.0, v2.Price)
	assert.Equal(t, "SupplierX", v2.Vendor)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateByIDRenormalizes(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	v, _, err := svc.Upsert(ctx, map[string]any{"brand": "samsung", "model": "A54", "quality": "AAA", "price": 100})
	require.NoError(t, err)

	got, err := svc.UpdateByID(ctx, v.ID, map[string]any{"price": "120,50", "sku": ""})
	require.NoError(t, err)
	assert.Equal(t, 120.50, got.Price)
	assert.Equal(t, "samsung-a54-aaa", got.SKU)
	assert.Equal(t, v.ID, got.ID)
}

func TestUpdateByIDFoldsOnSKUCollision(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a, _, err := svc.Upsert(ctx, map[string]any{"brand": "samsung", "model": "A54", "quality": "AAA", "price": 100, "stock": 5})
	require.NoError(t, err)
	b, _, err := svc.Upsert(ctx, map[string]any{"brand": "samsung", "model": "A55", "quality": "AAA", "price": 90, "stock": 3})
	require.NoError(t, err)

	// renaming b's model makes its key collide with a; the records fold
	got, err := svc.UpdateByID(ctx, b.ID, map[string]any{"model": "A54", "sku": ""})
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, 8, got.Stock)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
}

func TestUpdateByIDNotFound(t *testing.T) {
	svc := newService(t)
	_, err := svc.UpdateByID(context.Background(), "missing", map[string]any{"price": 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	v, _, err := svc.Upsert(ctx, map[string]any{"brand": "samsung", "model": "A54", "quality": "AAA"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, v.ID))
	assert.ErrorIs(t, svc.DeleteByID(ctx, v.ID), domain.ErrNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBrandsSortedAndLabeled(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, m := range []map[string]any{
		{"brand": "Samsung", "model": "A54", "quality": "AAA"},
		{"brand": "apple", "model": "13", "quality": "Orig"},
		{"brand": "samsung", "model": "S21", "quality": "AAA"},
	} {
		_, _, err := svc.Upsert(ctx, m)
		require.NoError(t, err)
	}

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "apple", brands[0].Slug)
	assert.Equal(t, "Apple", brands[0].Name)
	assert.Equal(t, 1, brands[0].Order)
	assert.Equal(t, "samsung", brands[1].Slug)
	assert.Equal(t, 2, brands[1].Order)
}

func TestByBrandFilterSearchSort(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, m := range []map[string]any{
		{"brand": "samsung", "model": "S21", "quality": "AAA", "tags": "oled"},
		{"brand": "samsung", "model": "A54", "quality": "Orig"},
		{"brand": "samsung", "model": "A54", "quality": "AAA"},
		{"brand": "apple", "model": "13", "quality": "Orig"},
	} {
		_, _, err := svc.Upsert(ctx, m)
		require.NoError(t, err)
	}

	got, err := svc.ByBrand(ctx, "samsung", "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A54", got[0].Model)
	assert.Equal(t, "AAA", got[0].Quality)
	assert.Equal(t, "A54", got[1].Model)
	assert.Equal(t, "Orig", got[1].Quality)
	assert.Equal(t, "S21", got[2].Model)

	got, err = svc.ByBrand(ctx, "samsung", "oled")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "S21", got[0].Model)

	got, err = svc.ByBrand(ctx, "", "orig")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestImportCountsAndViability(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, _, err := svc.Upsert(ctx, map[string]any{"brand": "samsung", "model": "A54", "quality": "AAA", "stock": 5})
	require.NoError(t, err)

	res, err := svc.Import(ctx, []map[string]any{
		{"brand": "samsung", "model": "A54", "quality": "AAA", "stock": 3},
		{"brand": "xiaomi", "model": "12", "quality": "AAA", "stock": 1},
		{"brand": "nobody"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Merged)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Total)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 8, items[0].Stock)
}

func TestCSVRoundTrip(t *testing.T) {
	src := newService(t)
	ctx := context.Background()

	_, _, err := src.Upsert(ctx, map[string]any{
		"brand": "samsung", "model": "A54", "quality": "AAA",
		"price": 150.5, "stock": 10, "tags": "screen, oled",
		"specs": map[string]any{"RAM": "8GB"},
	})
	require.NoError(t, err)

	out, err := src.ExportCSV(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	header := strings.SplitN(strings.TrimPrefix(string(out), "\uFEFF"), "\n", 2)[0]
	assert.Equal(t, "id,sku,brand,model,quality,price,currency,vendor,photo,stock,type,tags,specs,active", strings.TrimRight(header, "\r"))

	dst := newService(t)
	res, err := dst.ImportCSV(ctx, bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 0, res.Skipped)

	items, err := dst.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "samsung-a54-aaa", items[0].SKU)
	assert.Equal(t, 150.5, items[0].Price)
	assert.Equal(t, 10, items[0].Stock)
	assert.Equal(t, []string{"screen", "oled"}, items[0].Tags)
	assert.Equal(t, "RAM: 8GB", items[0].Specs)
}
