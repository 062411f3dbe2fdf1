package domain

import (
	"context"
	"io"
)

type Service interface {
	List(ctx context.Context) ([]View, error)
	Upsert(ctx context.Context, payload map[string]any) (*View, bool, error)
	UpdateByID(ctx context.Context, id string, payload map[string]any) (*View, error)
	DeleteByID(ctx context.Context, id string) error

	Brands(ctx context.Context) ([]BrandView, error)
	ByBrand(ctx context.Context, brand, query string) ([]StorefrontItem, error)

	Import(ctx context.Context, rows []map[string]any) (*ImportResult, error)
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	ExportJSON(ctx context.Context) ([]Product, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// View is an admin-facing product projection with derived display fields.
type View struct {
	Product
	BrandLabel string `json:"brandLabel"`
	PhotoURL   string `json:"photoUrl"`
}

// BrandView is the storefront brand listing entry. Color and order are fixed
// placeholders until merchandising gets real settings.
type BrandView struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Order  int    `json:"order"`
	Color  string `json:"color"`
}

// StorefrontItem is the products-by-brand projection. Size mirrors Type for
// backward compatibility with older storefront clients.
type StorefrontItem struct {
	ID         string   `json:"id"`
	SKU        string   `json:"sku"`
	Brand      string   `json:"brand"`
	BrandLabel string   `json:"brandLabel"`
	Model      string   `json:"model"`
	Quality    string   `json:"quality"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Vendor     string   `json:"vendor"`
	Photo      string   `json:"photo"`
	PhotoURL   string   `json:"photoUrl"`
	Type       string   `json:"type"`
	Tags       []string `json:"tags"`
	Specs      string   `json:"specs"`
	Size       string   `json:"size"`
	Stock      int      `json:"stock"`
	Active     bool     `json:"active"`
}

type ImportResult struct {
	Created int `json:"created"`
	Merged  int `json:"merged"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}
