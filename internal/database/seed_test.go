package database

import (
	"testing"

	"retail-ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), Options(false))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSeed_EmptyStore(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if n := countRows(t, db, &models.Branch{}); n != 7 {
		t.Errorf("branches = %d, want 7", n)
	}
	if n := countRows(t, db, &models.Category{}); n != 3 {
		t.Errorf("categories = %d, want 3", n)
	}

	var medicine models.Category
	if err := db.First(&medicine, "name = ?", "MEDICINE AIMS").Error; err != nil {
		t.Fatalf("seeded category MEDICINE AIMS missing: %v", err)
	}
	if medicine.Color != "primary" {
		t.Errorf("MEDICINE AIMS color = %q, want primary", medicine.Color)
	}
}

func TestSeed_SecondRunAddsNothing(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if n := countRows(t, db, &models.Branch{}); n != 7 {
		t.Errorf("branches after reseed = %d, want 7", n)
	}
	if n := countRows(t, db, &models.Category{}); n != 3 {
		t.Errorf("categories after reseed = %d, want 3", n)
	}
}

func TestSeed_CollectionsAreIndependent(t *testing.T) {
	db := openTestDB(t)

	// one existing branch suppresses branch seeding only
	if err := db.Create(&models.Branch{Name: "Existing Branch"}).Error; err != nil {
		t.Fatalf("create branch: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n := countRows(t, db, &models.Branch{}); n != 1 {
		t.Errorf("branches = %d, want the 1 pre-existing row", n)
	}
	if n := countRows(t, db, &models.Category{}); n != 3 {
		t.Errorf("categories = %d, want 3", n)
	}
}

func TestSeed_ExistingCategoriesSuppressCategorySeedingOnly(t *testing.T) {
	db := openTestDB(t)

	if err := db.Create(&models.Category{Name: "Existing Category"}).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n := countRows(t, db, &models.Category{}); n != 1 {
		t.Errorf("categories = %d, want the 1 pre-existing row", n)
	}
	if n := countRows(t, db, &models.Branch{}); n != 7 {
		t.Errorf("branches = %d, want 7", n)
	}
}
