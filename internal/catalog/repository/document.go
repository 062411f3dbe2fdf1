package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/normalize"
	"gorm.io/gorm"
)

// productRow wraps a product with its collection position so snapshot order
// survives the round trip through the database.
type productRow struct {
	Position       int `gorm:"primaryKey;autoIncrement:false"`
	domain.Product `gorm:"embedded"`
}

func (productRow) TableName() string { return "products" }

// DocumentStore persists the catalog in a document-style table. ReplaceAll
// rewrites the product rows and refreshes the derived brands table in a
// single transaction.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) (*DocumentStore, error) {
	if err := db.AutoMigrate(&productRow{}, &domain.Brand{}); err != nil {
		return nil, err
	}
	return &DocumentStore{db: db}, nil
}

func (s *DocumentStore) LoadAll(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Product, len(rows))
	for i, r := range rows {
		items[i] = r.Product
	}
	return items, nil
}

func (s *DocumentStore) ReplaceAll(ctx context.Context, items []domain.Product) error {
	rows := make([]productRow, len(items))
	for i, p := range items {
		rows[i] = productRow{Position: i, Product: p}
	}
	brands := deriveBrands(items)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM products`).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec(`DELETE FROM brands`).Error; err != nil {
			return err
		}
		if len(brands) > 0 {
			if err := tx.Create(&brands).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ViableImportRow skips rows missing a model or a price.
func (s *DocumentStore) ViableImportRow(p domain.Product) bool {
	return normalize.OneLine(p.Model) != "" && p.Price > 0
}

func deriveBrands(items []domain.Product) []domain.Brand {
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
	out := make([]domain.Brand, len(slugs))
	for i, slug := range slugs {
		out[i] = domain.Brand{Slug: slug, Name: normalize.Title(slug)}
	}
	return out
}
