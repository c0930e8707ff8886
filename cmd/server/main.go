package main

import (
	"context"
	"log"
	"os"

	"github.com/formulalab/backend/internal/admin"
	"github.com/formulalab/backend/internal/api"
	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/database"
	"github.com/formulalab/backend/internal/history"
	"github.com/formulalab/backend/internal/migrations"
	"github.com/formulalab/backend/internal/redis"
	"github.com/formulalab/backend/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations on start if requested
	if os.Getenv("MIGRATE_ON_START") == "true" {
		log.Println("↗ Running DB migrations on startup...")
		if err := migrations.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	// Apply runtime config overrides stored in the database
	if err := admin.ApplyRuntimeConfigToConfig(db, cfg); err != nil {
		log.Printf("[CONFIG] Failed to apply runtime config (using env defaults): %v", err)
	}

	// Wire storage into the WS layer and start the evaluation feed
	ws.SetDependencies(db, rdb, cfg)
	ws.StartEvalFeedSubscriber(context.Background())

	// Start the history retention worker
	history.StartRetentionWorker(context.Background(), db, cfg)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize API handlers
	api.SetupRoutes(router, db, rdb, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting FormulaLab server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
