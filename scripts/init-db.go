package main

import (
	"log"

	"menu_orders/internal/config"
	"menu_orders/internal/database"
	"menu_orders/internal/migrations"
)

// Standalone database initializer: creates the schema and seeds the
// default superadmin without starting the server.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Database initialized")
}
