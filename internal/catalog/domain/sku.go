package domain

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/telshop/backoffice/internal/normalize"
)

// DeriveSKU builds the stable composite key from brand/model/quality. Each
// component is slugged (lowercased, whitespace to hyphens), empty components
// are omitted. The result is casing- and whitespace-stable, so repeated
// imports of the same sheet always correlate.
func DeriveSKU(brand, model, quality string) string {
	parts := make([]string, 0, 3)
	for _, c := range []string{brand, model, quality} {
		if s := slug.Make(normalize.OneLine(c)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// FindBySKU returns the index of the first record matching key
// case-insensitively, or -1.
func FindBySKU(items []Product, key string) int {
	want := strings.ToLower(normalize.OneLine(key))
	for i := range items {
		if strings.ToLower(normalize.OneLine(items[i].SKU)) == want {
			return i
		}
	}
	return -1
}
