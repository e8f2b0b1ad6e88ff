package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config selects the storage backend. A non-empty PostgresDSN wins;
// otherwise a local sqlite file at SQLitePath is used.
type Config struct {
	PostgresDSN string
	SQLitePath  string
}

func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := selectDialector(cfg)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.AutoMigrate(
		&models.Account{},
		&models.Client{},
		&models.Case{},
		&models.Deadline{},
		&models.Task{},
		&models.Document{},
		&models.FinancialEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}

func selectDialector(cfg Config) (gorm.Dialector, error) {
	dsn := strings.TrimSpace(cfg.PostgresDSN)
	if dsn != "" {
		// Assume a postgres DSN even without a scheme prefix.
		return postgres.Open(dsn), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	sqliteDSN := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", cfg.SQLitePath)
	return sqlite.Open(sqliteDSN), nil
}
