package database

import (
	"strings"

	"clinic-admin/internal/config"
	"clinic-admin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open initializes the database connection. The driver is selected from the
// DATABASE_URL scheme: postgres:// or postgresql:// use the Postgres driver,
// anything else is treated as a SQLite DSN.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all persisted record types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
	)
}
