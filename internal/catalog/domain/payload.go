package domain

import (
	"strings"

	"github.com/telshop/backoffice/internal/normalize"
)

const DefaultCurrency = "TJS"

// FromPayload normalizes a loosely-typed payload into storage form. The SKU is
// taken from the payload when supplied and derived from brand/model/quality
// otherwise. The record ID is left empty; the store assigns it on creation.
func FromPayload(data map[string]any) Incoming {
	brand := strings.ToLower(normalize.OneLine(data["brand"]))
	model := normalize.OneLine(data["model"])
	quality := normalize.OneLine(data["quality"])

	photo := normalize.OneLine(data["photo"])
	if photo == "" {
		// legacy imports use "image"
		photo = normalize.OneLine(data["image"])
	}

	currency := normalize.OneLine(data["currency"])
	if currency == "" {
		currency = DefaultCurrency
	}

	sku := normalize.OneLine(data["sku"])
	if sku == "" {
		sku = DeriveSKU(brand, model, quality)
	}

	_, activeSet := data["active"]

	return Incoming{
		Product: Product{
			ID:       normalize.OneLine(data["id"]),
			SKU:      sku,
			Brand:    brand,
			Model:    model,
			Quality:  quality,
			Price:    normalize.Float(data["price"], 0),
			Currency: currency,
			Vendor:   normalize.OneLine(data["vendor"]),
			Photo:    photo,
			Stock:    normalize.Int(data["stock"], 0),
			Type:     normalize.OneLine(data["type"]),
			Tags:     normalize.Tags(data["tags"]),
			Specs:    normalize.Specs(data["specs"]),
			Active:   normalize.Bool(data["active"], true),
		},
		ActiveSet: activeSet,
	}
}
