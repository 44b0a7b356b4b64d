package database

import (
	"fmt"
	"log"

	"retail-ledger/internal/models"

	"gorm.io/gorm"
)

// The bootstrap rows a fresh install starts with. Branch contact fields are
// left empty on purpose; the shop fills them in later.
var defaultBranches = []string{
	"Main Branch",
	"Saddar Branch",
	"Clifton Branch",
	"Gulshan Branch",
	"North Nazimabad Branch",
	"Johar Town Branch",
	"Model Town Branch",
}

var defaultCategories = []models.Category{
	{Name: "MEDICINE AIMS", Description: "Pharmacy and medical supplies", Color: "primary"},
	{Name: "GENERAL ITEMS", Description: "General store merchandise", Color: "success"},
	{Name: "COSMETICS", Description: "Beauty and personal care", Color: "warning"},
}

// Seed populates the Branch and Category collections on first startup.
// Each collection is seeded only when it is completely empty, and the two
// checks are independent, so running Seed again (or from a second process)
// never duplicates or overwrites anything.
func Seed(db *gorm.DB) error {
	var branchCount int64
	if err := db.Model(&models.Branch{}).Count(&branchCount).Error; err != nil {
		return fmt.Errorf("count branches: %w", err)
	}
	if branchCount == 0 {
		for _, name := range defaultBranches {
			branch := models.Branch{Name: name}
			if err := db.Create(&branch).Error; err != nil {
				return fmt.Errorf("seed branch %q: %w", name, err)
			}
		}
		log.Printf("🌱 Seeded %d default branches", len(defaultBranches))
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if categoryCount == 0 {
		for _, category := range defaultCategories {
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", category.Name, err)
			}
		}
		log.Printf("🌱 Seeded %d default categories", len(defaultCategories))
	}

	return nil
}
