package domain

import (
	"errors"
)

// Product is one catalog record. The SKU correlates upserts and is
// case-insensitively unique across the catalog; the ID is opaque and stable.
type Product struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	SKU      string   `json:"sku" gorm:"index"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Quality  string   `json:"quality"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Vendor   string   `json:"vendor"`
	Photo    string   `json:"photo"`
	Stock    int      `json:"stock"`
	Type     string   `json:"type"`
	Tags     []string `json:"tags" gorm:"serializer:json"`
	Specs    string   `json:"specs"`
	Active   bool     `json:"active"`
}

func (Product) TableName() string { return "products" }

// Incoming is a normalized payload headed for an upsert. ActiveSet records
// whether the payload carried the active flag explicitly, which decides
// whether a merge may overwrite it.
type Incoming struct {
	Product
	ActiveSet bool
}

// Brand is a derived grouping row maintained by the document store.
type Brand struct {
	Slug string `json:"slug" gorm:"primaryKey"`
	Name string `json:"name"`
}

func (Brand) TableName() string { return "brands" }

var (
	ErrNotFound = errors.New("not_found")
)
