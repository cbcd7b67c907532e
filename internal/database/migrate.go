package database

import (
	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.VendorPhoto{},
		&models.Review{},
		&models.QuoteRequest{},
		&models.EmailOutbox{},
	)
}
