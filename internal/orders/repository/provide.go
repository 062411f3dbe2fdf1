package repository

import (
	"github.com/telshop/backoffice/internal/config"
	"github.com/telshop/backoffice/internal/orders/domain"
	"gorm.io/gorm"
)

// Provide picks the ledger store backend from config, mirroring the catalog.
func Provide(cfg config.Config, db *gorm.DB) (domain.Store, error) {
	if cfg.StoreDriver == config.DriverJSON {
		return NewJSONStore(cfg.DataDir)
	}
	return NewDocumentStore(db)
}
