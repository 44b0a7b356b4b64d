package main

import (
	"fmt"
	"log"

	"retail-ledger/internal/config"
	"retail-ledger/internal/database"
	"retail-ledger/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// No storage, no service: bail out instead of serving requests that can
	// only fail.
	if err := database.Connect(cfg.Database); err != nil {
		log.Fatal("❌ Could not reach the database: ", err)
	}
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.Seed(database.DB); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	r := router.Setup(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Println("🚀 Server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
