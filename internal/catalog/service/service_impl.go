package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/normalize"
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
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("catalog.service"),
		store: p.Store,
		genID: p.GenID,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.View, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.View, len(items))
	for i, p := range items {
		out[i] = toView(p)
	}
	return out, nil
}

// Upsert creates or merges a product keyed by its derived or supplied SKU.
// The returned flag is true when a new record was appended.
func (s *Service) Upsert(ctx context.Context, payload map[string]any) (*domain.View, bool, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, false, err
	}

	inc := domain.FromPayload(payload)
	inc.ID = ""

	if idx := domain.FindBySKU(items, inc.SKU); idx >= 0 {
		domain.Merge(&items[idx], inc)
		if err := s.store.ReplaceAll(ctx, items); err != nil {
			return nil, false, err
		}
		v := toView(items[idx])
		s.log.Info("product merged", zap.String("sku", items[idx].SKU), zap.String("id", items[idx].ID))
		return &v, false, nil
	}

	inc.ID = s.genID.Generate().String()
	items = append(items, inc.Product)
	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, false, err
	}
	v := toView(inc.Product)
	s.log.Info("product created", zap.String("sku", inc.SKU), zap.String("id", inc.ID))
	return &v, true, nil
}

// UpdateByID re-normalizes the merged view of the existing record and the
// incoming fields. If the resulting SKU now belongs to a different record the
// two are folded together and the original is deleted.
func (s *Service) UpdateByID(ctx context.Context, id string, payload map[string]any) (*domain.View, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByID(items, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	merged := toPayload(items[idx])
	for k, v := range payload {
		merged[k] = v
	}
	updated := domain.FromPayload(merged)
	updated.ID = items[idx].ID

	newKey := normalize.OneLine(updated.SKU)
	if newKey != "" && !strings.EqualFold(newKey, normalize.OneLine(items[idx].SKU)) {
		if dup := domain.FindBySKU(items, updated.SKU); dup >= 0 && items[dup].ID != id {
			domain.Merge(&items[dup], updated)
			folded := items[dup]
			items = removeAt(items, findByID(items, id))
			if err := s.store.ReplaceAll(ctx, items); err != nil {
				return nil, err
			}
			s.log.Info("product folded on sku collision",
				zap.String("from", id), zap.String("into", folded.ID), zap.String("sku", folded.SKU))
			v := toView(folded)
			return &v, nil
		}
	}

	items[idx] = updated.Product
	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	v := toView(items[idx])
	return &v, nil
}

func (s *Service) DeleteByID(ctx context.Context, id string) error {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	idx := findByID(items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	return s.store.ReplaceAll(ctx, removeAt(items, idx))
}

func (s *Service) Brands(ctx context.Context) ([]domain.BrandView, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, p := range items {
		if slug := strings.ToLower(normalize.OneLine(p.Brand)); slug != "" {
			seen[slug] = true
		}
	}
	slugs := make([]string, 0, len(seen))
	for slug := range seen {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	out := make([]domain.BrandView, len(slugs))
	for i, slug := range slugs {
		name := normalize.Title(slug)
		if name == "" {
			name = strings.ToUpper(slug)
		}
		out[i] = domain.BrandView{
			ID:     slug,
			Slug:   slug,
			Name:   name,
			Active: true,
			Order:  i + 1,
			Color:  "#1D4ED8",
		}
	}
	return out, nil
}

func (s *Service) ByBrand(ctx context.Context, brand, query string) ([]domain.StorefrontItem, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	brand = strings.ToLower(normalize.OneLine(brand))
	query = strings.ToLower(normalize.OneLine(query))

	out := make([]domain.StorefrontItem, 0, len(items))
	for _, p := range items {
		slug := strings.ToLower(normalize.OneLine(p.Brand))
		if brand != "" && slug != brand {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, domain.StorefrontItem{
			ID:         p.ID,
			SKU:        normalize.OneLine(p.SKU),
			Brand:      slug,
			BrandLabel: normalize.Title(slug),
			Model:      normalize.OneLine(p.Model),
			Quality:    normalize.OneLine(p.Quality),
			Price:      p.Price,
			Currency:   currencyOrDefault(p.Currency),
			Vendor:     normalize.OneLine(p.Vendor),
			Photo:      normalize.OneLine(p.Photo),
			PhotoURL:   domain.PhotoURL(p.Photo),
			Type:       normalize.OneLine(p.Type),
			Tags:       p.Tags,
			Specs:      normalize.OneLine(p.Specs),
			Size:       normalize.OneLine(p.Type),
			Stock:      p.Stock,
			Active:     p.Active,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := strings.ToLower(out[i].Model), strings.ToLower(out[j].Model)
		if mi != mj {
			return mi < mj
		}
		return strings.ToLower(out[i].Quality) < strings.ToLower(out[j].Quality)
	})
	return out, nil
}

func (s *Service) Import(ctx context.Context, rows []map[string]any) (*domain.ImportResult, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.ImportResult{}
	for _, row := range rows {
		inc := domain.FromPayload(row)
		inc.ID = ""
		if !s.store.ViableImportRow(inc.Product) {
			res.Skipped++
			continue
		}
		if idx := domain.FindBySKU(items, inc.SKU); idx >= 0 {
			domain.Merge(&items[idx], inc)
			res.Merged++
			continue
		}
		inc.ID = s.genID.Generate().String()
		items = append(items, inc.Product)
		res.Created++
	}

	if err := s.store.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	res.Total = len(items)
	s.log.Info("bulk import finished",
		zap.Int("created", res.Created), zap.Int("merged", res.Merged), zap.Int("skipped", res.Skipped))
	return res, nil
}

func (s *Service) ExportJSON(ctx context.Context) ([]domain.Product, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, nil
}

// csvColumns is the fixed export column order; import maps headers
// case-insensitively so a round trip needs no configuration.
var csvColumns = []string{
	"id", "sku", "brand", "model", "quality", "price", "currency",
	"vendor", "photo", "stock", "type", "tags", "specs", "active",
}

// ExportCSV renders the catalog as a UTF-8 CSV with a byte-order mark so
// spreadsheet tools pick the encoding up correctly.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	bom := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder().Transformer)
	w := csv.NewWriter(bom)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, p := range items {
		rec := []string{
			p.ID,
			p.SKU,
			p.Brand,
			p.Model,
			p.Quality,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.Currency,
			p.Vendor,
			p.Photo,
			strconv.Itoa(p.Stock),
			p.Type,
			strings.Join(p.Tags, ","),
			p.Specs,
			strconv.FormatBool(p.Active),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
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

// ImportCSV decodes a BOM-tolerant CSV into loose rows and feeds them through
// the regular import pipeline.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportResult, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder().Transformer))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return s.Import(ctx, nil)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(normalize.OneLine(h))
	}

	rows := make([]map[string]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := map[string]any{}
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return s.Import(ctx, rows)
}

func toView(p domain.Product) domain.View {
	slug := strings.ToLower(normalize.OneLine(p.Brand))
	label := normalize.Title(slug)
	if label == "" {
		label = strings.ToUpper(slug)
	}
	return domain.View{
		Product:    p,
		BrandLabel: label,
		PhotoURL:   domain.PhotoURL(p.Photo),
	}
}

// toPayload flattens a stored record back into payload shape so an
// identifier-targeted update can overlay incoming fields before
// re-normalizing the whole record.
func toPayload(p domain.Product) map[string]any {
	return map[string]any{
		"id":       p.ID,
		"sku":      p.SKU,
		"brand":    p.Brand,
		"model":    p.Model,
		"quality":  p.Quality,
		"price":    p.Price,
		"currency": p.Currency,
		"vendor":   p.Vendor,
		"photo":    p.Photo,
		"stock":    p.Stock,
		"type":     p.Type,
		"tags":     p.Tags,
		"specs":    p.Specs,
		"active":   p.Active,
	}
}

func matchesQuery(p domain.Product, query string) bool {
	hay := strings.ToLower(strings.Join([]string{
		normalize.OneLine(p.SKU),
		normalize.OneLine(p.Model),
		normalize.OneLine(p.Quality),
		normalize.OneLine(p.Type),
		normalize.OneLine(p.Specs),
		strings.Join(p.Tags, " "),
	}, " "))
	return strings.Contains(hay, query)
}

func currencyOrDefault(c string) string {
	if s := normalize.OneLine(c); s != "" {
		return s
	}
	return domain.DefaultCurrency
}

func findByID(items []domain.Product, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func removeAt(items []domain.Product, idx int) []domain.Product {
	if idx < 0 || idx >= len(items) {
		return items
	}
	return append(items[:idx], items[idx+1:]...)
}
