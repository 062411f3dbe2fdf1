package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, payload map[string]any) (*Order, error)
	Update(ctx context.Context, id string, payload map[string]any) (*Order, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*Order, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	Totals(ctx context.Context) (*TotalsResult, error)
}

// TotalsResult aggregates the ledger by currency and by workflow status.
type TotalsResult struct {
	Orders     int                      `json:"orders"`
	ByCurrency map[string]CurrencyTotal `json:"byCurrency"`
	ByStatus   map[string]int           `json:"byStatus"`
}

type CurrencyTotal struct {
	Orders int     `json:"orders"`
	Total  float64 `json:"total"`
}
