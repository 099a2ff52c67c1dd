package main

import (
	"context"
	"log"
	"time"

	"meeting-minutes-be/internal/bootstrap"
	"meeting-minutes-be/internal/config"
	"meeting-minutes-be/internal/model"
	"meeting-minutes-be/internal/server"
	"meeting-minutes-be/internal/tracer"
	"meeting-minutes-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Self-heal schema drift before serving traffic. A failure is
	// logged but does not block startup: reads still work against an
	// older schema, only the new columns stay empty.
	if err := database.ValidateSchema(gormDB.Migrator(), model.SchemaMigrations); err != nil {
		log.Printf("[WARN] Schema validation incomplete: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// Periodic retention sweep for finished jobs
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := container.SummaryService.Cleanup(context.Background(), 30*24*time.Hour); err != nil {
				log.Printf("Background Cleanup Error: %v", err)
			}
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
