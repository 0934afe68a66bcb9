package database

import (
	"fmt"
	"strings"

	"alexis/internal/config"
	"alexis/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured store. SQLite is the default and keeps
// everything in a single file.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	case "sqlite", "":
		dialector = sqlite.Open(sqliteDSN(cfg.DatabaseDSN))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// sqliteDSN adds WAL mode and a busy timeout to the DSN. The driver applies
// DSN options to every pooled connection, so concurrent writers wait for the
// lock instead of failing with SQLITE_BUSY.
func sqliteDSN(dsn string) string {
	var opts []string
	if !strings.Contains(dsn, "_journal_mode=") {
		opts = append(opts, "_journal_mode=WAL")
	}
	if !strings.Contains(dsn, "_busy_timeout=") {
		opts = append(opts, "_busy_timeout=5000")
	}
	if len(opts) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(opts, "&")
}

// Bootstrap creates every table the API needs. It is safe to call on each start.
func Bootstrap(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Car{},
		&models.ServiceItem{},
		&models.Booking{},
		&models.TyreProduct{},
		&models.TyreBrand{},
		&models.User{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
