package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeStockAccumulates(t *testing.T) {
	dst := Product{SKU: "samsung-a54-aaa", Stock: 5}
	Merge(&dst, Incoming{Product: Product{SKU: "samsung-a54-aaa", Stock: 3}})
	assert.Equal(t, 8, dst.Stock)
}

func TestMergeZeroPriceAndEmptyTagsNeverOverwrite(t *testing.T) {
	dst := Product{Price: 100, Stock: 5, Tags: []string{"a"}}
	Merge(&dst, Incoming{Product: Product{Price: 0, Stock: 3, Tags: nil}})

	assert.Equal(t, 100.0, dst.Price)
	assert.Equal(t, 8, dst.Stock)
	assert.Equal(t, []string{"a"}, dst.Tags)
}

func TestMergePositivePriceOverwrites(t *testing.T) {
	dst := Product{Price: 100}
	Merge(&dst, Incoming{Product: Product{Price: 120}})
	assert.Equal(t, 120.0, dst.Price)
}

func TestMergeDescriptiveFieldsFirstWriterWins(t *testing.T) {
	dst := Product{Vendor: "ExistingCo", Photo: ""}
	Merge(&dst, Incoming{Product: Product{Vendor: "OtherCo", Photo: "a54.jpg", Type: "OLED"}})

	assert.Equal(t, "ExistingCo", dst.Vendor)
	assert.Equal(t, "a54.jpg", dst.Photo)
	assert.Equal(t, "OLED", dst.Type)
}

func TestMergeTagsReplaceWholesale(t *testing.T) {
	dst := Product{Tags: []string{"old", "stale"}}
	Merge(&dst, Incoming{Product: Product{Tags: []string{"new"}}})
	assert.Equal(t, []string{"new"}, dst.Tags)
}

func TestMergeActiveFollowsExplicitPayload(t *testing.T) {
	dst := Product{Active: true}

	Merge(&dst, Incoming{Product: Product{Active: false}, ActiveSet: false})
	assert.True(t, dst.Active)

	Merge(&dst, Incoming{Product: Product{Active: false}, ActiveSet: true})
	assert.False(t, dst.Active)
}

func TestMergeSKUFillsOnlyWhenEmpty(t *testing.T) {
	dst := Product{SKU: ""}
	Merge(&dst, Incoming{Product: Product{SKU: "samsung-a54-aaa"}})
	assert.Equal(t, "samsung-a54-aaa", dst.SKU)

	Merge(&dst, Incoming{Product: Product{SKU: "other"}})
	assert.Equal(t, "samsung-a54-aaa", dst.SKU)
}

// Re-importing the identical row doubles stock and changes nothing else.
func TestMergeReimportIdempotence(t *testing.T) {
	row := Product{
		SKU: "samsung-a54-aaa", Brand: "samsung", Model: "A54", Quality: "AAA",
		Price: 150, Stock: 10, Vendor: "SupplierX", Tags: []string{"screen"},
		Specs: "RAM: 8GB", Active: true,
	}
	dst := row

	Merge(&dst, Incoming{Product: row})

	assert.Equal(t, 20, dst.Stock)
	assert.Equal(t, row.Price, dst.Price)
	assert.Equal(t, row.Brand, dst.Brand)
	assert.Equal(t, row.Model, dst.Model)
	assert.Equal(t, row.Quality, dst.Quality)
	assert.Equal(t, row.Vendor, dst.Vendor)
	assert.Equal(t, row.Tags, dst.Tags)
	assert.Equal(t, row.Specs, dst.Specs)
}
