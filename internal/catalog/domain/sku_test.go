package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSKU(t *testing.T) {
	tests := []struct {
		name                  string
		brand, model, quality string
		want                  string
	}{
		{"basic", "samsung", "A54", "AAA", "samsung-a54-aaa"},
		{"casing stable", "Samsung", "a54", "aaa", "samsung-a54-aaa"},
		{"whitespace stable", "  samsung ", "A54\n", " AAA ", "samsung-a54-aaa"},
		{"inner spaces hyphenate", "samsung", "Galaxy A54", "AAA", "samsung-galaxy-a54-aaa"},
		{"empty components omitted", "samsung", "", "AAA", "samsung-aaa"},
		{"all empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSKU(tt.brand, tt.model, tt.quality))
		})
	}
}

func TestFindBySKUCaseInsensitive(t *testing.T) {
	items := []Product{
		{SKU: "apple-13-orig"},
		{SKU: "Samsung-A54-AAA"},
		{SKU: "samsung-a54-aaa"},
	}

	assert.Equal(t, 1, FindBySKU(items, "samsung-a54-aaa"))
	assert.Equal(t, 0, FindBySKU(items, " APPLE-13-ORIG "))
	assert.Equal(t, -1, FindBySKU(items, "nokia-3310"))
	assert.Equal(t, -1, FindBySKU(nil, "anything"))
}
