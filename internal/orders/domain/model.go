package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Order is one purchase order from the overseas-supplier workflow. Total and
// the per-item sums are derived values: they are recomputed from the current
// items and shipping cost on every read and write, never trusted from
// storage.
type Order struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	Date         string  `json:"date"`
	Vendor       string  `json:"vendor"`
	Currency     string  `json:"currency"`
	Note         string  `json:"note"`
	Status       string  `json:"status"`
	ShippingCost float64 `json:"shipping_cost"`
	Items        []Item  `json:"items" gorm:"serializer:json"`
	Total        float64 `json:"total"`
}

func (Order) TableName() string { return "china_orders" }

// Item references products only by free-text brand/model/quality; there is no
// referential link to the catalog.
type Item struct {
	Brand   string  `json:"brand"`
	Model   string  `json:"model"`
	Quality string  `json:"quality"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
	Sum     float64 `json:"sum"`
}

const (
	StatusNew = "New"
)

var (
	ErrNotFound = errors.New("not_found")
)

// Recalc recomputes every line sum and the order total at two decimal places.
func (o *Order) Recalc() {
	total := decimal.Zero
	for i := range o.Items {
		sum := decimal.NewFromFloat(o.Items[i].Price).
			Mul(decimal.NewFromInt(int64(o.Items[i].Qty))).
			Round(2)
		o.Items[i].Sum = sum.InexactFloat64()
		total = total.Add(sum)
	}
	o.Total = total.Add(decimal.NewFromFloat(o.ShippingCost)).Round(2).InexactFloat64()
}
