package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"forklift_tracker/internal/models"
)

// ConnectDB opens the Postgres connection and migrates the schema. The
// handle is returned to the caller; nothing global holds it.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Station geometry columns use PostGIS points.
	db.Exec("CREATE EXTENSION IF NOT EXISTS postgis;")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Forklift{},
		&models.Station{},
		&models.Telemetry{},
	); err != nil {
		return nil, fmt.Errorf("auto-migration: %w", err)
	}

	return db, nil
}
