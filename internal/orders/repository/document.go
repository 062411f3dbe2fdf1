package repository

import (
	"context"

	"github.com/telshop/backoffice/internal/orders/domain"
	"gorm.io/gorm"
)

type orderRow struct {
	Position     int `gorm:"primaryKey;autoIncrement:false"`
	domain.Order `gorm:"embedded"`
}

func (orderRow) TableName() string { return "china_orders" }

// DocumentStore persists the ledger in a document-style table, items embedded
// as JSON on each row.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) (*DocumentStore, error) {
	if err := db.AutoMigrate(&orderRow{}); err != nil {
		return nil, err
	}
	return &DocumentStore{db: db}, nil
}

func (s *DocumentStore) LoadAll(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Order, len(rows))
	for i, r := range rows {
		items[i] = r.Order
	}
	return items, nil
}

func (s *DocumentStore) ReplaceAll(ctx context.Context, items []domain.Order) error {
	rows := make([]orderRow, len(items))
	for i, o := range items {
		rows[i] = orderRow{Position: i, Order: o}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM china_orders`).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
