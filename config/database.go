package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the database named by databaseURL and stores it as the shared handle.
// PostgreSQL URLs are the default; "sqlite://<path>", "file:..." and ":memory:" select SQLite.
func ConnectDatabase(databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("database URL is empty")
	}

	db, err := OpenDatabase(databaseURL)
	if err != nil {
		return err
	}

	DB = db
	log.Info().Str("driver", db.Dialector.Name()).Msg("Database connection established successfully")
	return nil
}

// OpenDatabase opens a new gorm handle without touching the shared one
func OpenDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func dialectorFor(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:":
		return sqlite.Open(databaseURL)
	default:
		return postgres.Open(databaseURL)
	}
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the shared database instance (tests use an in-memory SQLite handle)
func SetDB(db *gorm.DB) {
	DB = db
}
