// Sleep Scoring API
//
// REST API for scoring raw wearable sleep exports.
//
//	@title			Sleep Scoring API
//	@version		1.0
//	@description	Deterministic sleep episode reconstruction and scoring from raw wearable stage exports.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-scores
//	@tag.description	Scoring and session history endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/sleep-scoring/internal/api"
	"github.com/blaisecz/sleep-scoring/internal/api/handler"
	"github.com/blaisecz/sleep-scoring/internal/config"
	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/internal/repository"
	"github.com/blaisecz/sleep-scoring/internal/seed"
	"github.com/blaisecz/sleep-scoring/internal/service"
	"github.com/blaisecz/sleep-scoring/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op unless an OTLP endpoint is configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-scoring-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepSession{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSleepSessionRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sleepScoreService := service.NewSleepScoreService(sessionRepo, userRepo)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, sleepScoreService); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepScoreHandler := handler.NewSleepScoreHandler(sleepScoreService)

	// Setup router
	router := api.NewRouter(userHandler, sleepScoreHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
