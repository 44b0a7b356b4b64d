package database

import (
	"fmt"
	"log"
	"time"

	"retail-ledger/internal/config"
	"retail-ledger/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options is the gorm configuration shared by the MySQL connection and the
// in-memory databases the tests open. TranslateError lets callers detect
// duplicate keys as gorm.ErrDuplicatedKey regardless of driver. Foreign key
// constraints are not created by migration: branch references on sales are
// checked by the handlers (existence at create, explicit cascade at delete),
// so a deleted branch's sales can be cleaned up in a second write.
func Options(verbose bool) *gorm.Config {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if verbose {
		gormLogger = logger.Default.LogMode(logger.Info)
	}
	return &gorm.Config{
		Logger:                                   gormLogger,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Connect opens the MySQL connection described by cfg.DSN, waiting for the
// database to come up. Startup must not proceed without storage, so the
// caller is expected to treat an error as fatal.
func Connect(cfg config.DatabaseConfig) error {
	var err error
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(mysql.Open(cfg.DSN), Options(cfg.LogMode))
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("✅ Successfully connected to MySQL!")
	return nil
}

// AutoMigrate syncs the schema for all record collections.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Branch{},
		&models.Category{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Settings{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("✅ Database Schema Synced!")
	return nil
}
