package infra

import (
	"fmt"
	"strings"

	"gin-giftregistry/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite:///"

// Dialector picks the gorm driver for a DB_URL. "sqlite:///path" opens a
// SQLite file with foreign keys enabled; postgres URLs and key=value DSNs go
// to PostgreSQL.
func Dialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, sqlitePrefix):
		path := strings.TrimPrefix(databaseURL, sqlitePrefix)
		if path == "" {
			return nil, fmt.Errorf("sqlite url %q has no path", databaseURL)
		}
		if !strings.Contains(path, "?") {
			path += "?_foreign_keys=on"
		}
		return sqlite.Open(path), nil
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"),
		strings.Contains(databaseURL, "host="):
		return postgres.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported DB_URL %q", databaseURL)
	}
}

func SetupDB(databaseURL string) (*gorm.DB, error) {
	dialector, err := Dialector(databaseURL)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the registry uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Gift{},
		&models.Claim{},
		&models.Notification{},
		&models.BlacklistedToken{},
	)
}
