package domain

import (
	"github.com/telshop/backoffice/internal/normalize"
)

// Merge reconciles an incoming record into an existing one sharing its SKU.
// Precedence, in order: stock accumulates; a positive incoming price
// overwrites; descriptive scalars only fill currently-empty fields; a
// non-empty incoming tag list replaces wholesale; the active flag follows the
// payload whenever it was explicitly present; the SKU fills only when empty.
// Re-importing an identical sheet must double stock and change nothing else.
func Merge(dst *Product, src Incoming) {
	dst.Stock += src.Stock

	if src.Price > 0 {
		dst.Price = src.Price
	}

	if normalize.OneLine(dst.Brand) == "" {
		dst.Brand = src.Brand
	}
	if normalize.OneLine(dst.Model) == "" {
		dst.Model = src.Model
	}
	if normalize.OneLine(dst.Quality) == "" {
		dst.Quality = src.Quality
	}
	if normalize.OneLine(dst.Currency) == "" {
		dst.Currency = src.Currency
	}
	if normalize.OneLine(dst.Vendor) == "" {
		dst.Vendor = src.Vendor
	}
	if normalize.OneLine(dst.Photo) == "" {
		dst.Photo = src.Photo
	}
	if normalize.OneLine(dst.Type) == "" {
		dst.Type = src.Type
	}
	if normalize.OneLine(dst.Specs) == "" {
		dst.Specs = src.Specs
	}

	if len(src.Tags) > 0 {
		dst.Tags = src.Tags
	}

	if src.ActiveSet {
		dst.Active = src.Active
	}

	if normalize.OneLine(dst.SKU) == "" {
		dst.SKU = src.SKU
	}
}
