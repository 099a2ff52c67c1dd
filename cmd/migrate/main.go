package main

import (
	"log"
	"os"

	"meeting-minutes-be/internal/model"
	"meeting-minutes-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (gen_random_uuid for transcript ids)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Meeting{},
		&model.Transcript{},
		&model.SummaryJob{},
		&model.SummaryRequest{},
		&model.ModelConfig{},
		&model.TranscriptConfig{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Replay the column history for databases created before
	// AutoMigrate knew about the newer fields.
	log.Println("Step 3: Validating column history...")
	if err := database.ValidateSchema(db.Migrator(), model.SchemaMigrations); err != nil {
		log.Fatalf("Error: Schema validation failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
