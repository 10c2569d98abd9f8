package main

import (
	"fmt"
	"log"
	"nars_shop/internal/config"
	"nars_shop/internal/database"
	"nars_shop/internal/migrations"
	"nars_shop/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Product{},
		&models.ProductRating{},
		&models.Order{},
		&models.OrderItem{},
		&models.ScheduledTask{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate the schema and seed default data
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
