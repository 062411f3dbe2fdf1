package db

import (
	"fmt"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/telshop/backoffice/internal/config"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return sqlite.Open(filepath.Join(cfg.DataDir, "backoffice.db")), nil
	case config.DriverPostgres:
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
		)), nil
	default:
		return nil, fmt.Errorf("unsupported %s type", cfg.StoreDriver)
	}
}

// Open connects to the configured document store. The json driver keeps
// snapshots on disk and has no database behind it; Open returns a nil
// connection for it so the stores can pick their backend from config.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.StoreDriver == config.DriverJSON {
		return nil, nil
	}
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// NewTest opens a fresh in-memory sqlite database for tests.
func NewTest() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// Module provides the gorm connection for document-store deployments.
var Module = fx.Module("db",
	fx.Provide(Open),
)
