package main

import (
	"log"
	"os"

	"github.com/formulalab/backend/internal/admin"
	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/database"
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

	// Seed admin account
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin" // Default username
		log.Printf("Using default admin username: %s", username)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-in-production" // Default password
		log.Printf("WARNING: Using default admin password. Set ADMIN_PASSWORD env var in production!")
	}

	displayName := os.Getenv("ADMIN_DISPLAY_NAME")
	if displayName == "" {
		displayName = "Admin"
	}
	roles := []string{"super_admin"}

	err = admin.CreateAdminAccount(db, username, displayName, password, roles)
	if err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("✓ Admin account created/updated successfully")
	log.Printf("  Username: %s", username)
	log.Printf("  Display Name: %s", displayName)
	log.Printf("  Roles: %v", roles)
	log.Println("\nYou can now login at /api/v1/admin/login with:")
	log.Printf("  Username: %s", username)
	log.Printf("  Password: %s", password)
}
