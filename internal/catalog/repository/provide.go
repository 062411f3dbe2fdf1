package repository

import (
	"github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/config"
	"gorm.io/gorm"
)

// Provide picks the catalog store backend from config: a JSON snapshot file
// by default, the gorm document store when a database driver is configured.
func Provide(cfg config.Config, db *gorm.DB) (domain.Store, error) {
	if cfg.StoreDriver == config.DriverJSON {
		return NewJSONStore(cfg.DataDir)
	}
	return NewDocumentStore(db)
}
