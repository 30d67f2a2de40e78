// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
)

// SeedInitialData inserts a handful of currencies when the table is empty.
// Intended for development environments only.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var currencyCount int64
	if err := db.Model(&models.Currency{}).Count(&currencyCount).Error; err != nil {
		return fmt.Errorf("failed to count currencies: %w", err)
	}

	if currencyCount == 0 {
		currencies := []models.Currency{
			{Code: "USD", Name: "US Dollar", Symbol: "$"},
			{Code: "EUR", Name: "Euro", Symbol: "€"},
			{Code: "GBP", Name: "British Pound", Symbol: "£"},
		}

		if err := db.Create(&currencies).Error; err != nil {
			return fmt.Errorf("failed to seed currencies: %w", err)
		}

		log.Println("Default currencies created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}
