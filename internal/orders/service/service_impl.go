package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/telshop/backoffice/internal/normalize"
	"github.com/telshop/backoffice/internal/orders/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Store domain.Store
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	store domain.Store
	genID *snowflake.Node
	now   func() time.Time
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("orders.service"),
		store: p.Store,
		genID: p.GenID,
		now:   time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Recalc()
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findByID(items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	items[idx].Recalc()
	o := items[idx]
	return &o, nil
}

func (s *Service) Create(ctx context.Context, payload map[string]any) (*domain.Order, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	date := normalize.OneLine(payload["date"])
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	currency := normalize.OneLine(payload["currency"])
	if currency == "" {
		currency = "TJS"
	}

	order := domain.Order{
		ID:           s.genID.Generate().String(),
		Date:         date,
		Vendor:       normalize.OneLine(payload["vendor"]),
		Currency:     currency,
		Note:         normalize.OneLine(payload["note"]),
		Status:       domain.StatusNew,
		ShippingCost: normalize.Float(payload["shipping_cost"], 0),
		Items:        parseItems(payload["items"]),
	}
	order.Recalc()

	items = append(items, order)
	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	s.log.Info("order created", zap.String("id", order.ID), zap.Float64("total", order.Total))
	return &order, nil
}

func (s *Service) Update(ctx context.Context, id string, payload map[string]any) (*domain.Order, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findByID(items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	o := &items[idx]
	if v, ok := payload["date"]; ok {
		if d := normalize.OneLine(v); d != "" {
			o.Date = d
		}
	}
	if v, ok := payload["vendor"]; ok {
		o.Vendor = normalize.OneLine(v)
	}
	if v, ok := payload["currency"]; ok {
		if c := normalize.OneLine(v); c != "" {
			o.Currency = c
		}
	}
	if v, ok := payload["note"]; ok {
		o.Note = normalize.OneLine(v)
	}
	if v, ok := payload["shipping_cost"]; ok {
		o.ShippingCost = normalize.Float(v, o.ShippingCost)
	}
	if v, ok := payload["items"]; ok {
		o.Items = parseItems(v)
	}
	o.Recalc()

	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	out := *o
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	idx := findByID(items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	return s.store.ReplaceAll(ctx, append(items[:idx], items[idx+1:]...))
}

func (s *Service) SetStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findByID(items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if next := normalize.OneLine(status); next != "" {
		items[idx].Status = next
	}
	items[idx].Recalc()
	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	o := items[idx]
	return &o, nil
}

var csvColumns = []string{
	"order_id", "date", "vendor", "status", "currency",
	"brand", "model", "quality", "price", "qty", "sum",
	"shipping_cost", "total", "note",
}

// ExportCSV renders the ledger one row per line item, same BOM convention as
// the catalog export.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	bom := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder().Transformer)
	w := csv.NewWriter(bom)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, o := range items {
		rows := o.Items
		if len(rows) == 0 {
			rows = []domain.Item{{}}
		}
		for _, it := range rows {
			rec := []string{
				o.ID,
				o.Date,
				o.Vendor,
				o.Status,
				o.Currency,
				it.Brand,
				it.Model,
				it.Quality,
				strconv.FormatFloat(it.Price, 'f', -1, 64),
				strconv.Itoa(it.Qty),
				strconv.FormatFloat(it.Sum, 'f', -1, 64),
				strconv.FormatFloat(o.ShippingCost, 'f', -1, 64),
				strconv.FormatFloat(o.Total, 'f', -1, 64),
				o.Note,
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := bom.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) Totals(ctx context.Context) (*domain.TotalsResult, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.TotalsResult{
		Orders:     len(items),
		ByCurrency: map[string]domain.CurrencyTotal{},
		ByStatus:   map[string]int{},
	}
	for _, o := range items {
		cur := res.ByCurrency[o.Currency]
		cur.Orders++
		cur.Total += o.Total
		res.ByCurrency[o.Currency] = cur
		res.ByStatus[o.Status]++
	}
	return res, nil
}

func parseItems(v any) []domain.Item {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]domain.Item, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.Item{
			Brand:   normalize.OneLine(m["brand"]),
			Model:   normalize.OneLine(m["model"]),
			Quality: normalize.OneLine(m["quality"]),
			Price:   normalize.Float(m["price"], 0),
			Qty:     normalize.Int(m["qty"], 0),
		})
	}
	return out
}

func findByID(items []domain.Order, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
