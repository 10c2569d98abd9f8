package migrations

import (
	"log"
	"nars_shop/internal/models"
	"nars_shop/internal/repository"
	"nars_shop/internal/services"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the default admin account.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductRating{},
		&models.Order{},
		&models.OrderItem{},
		&models.ScheduledTask{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	// Check if the admin account already exists
	if existing, err := userService.GetUserByEmail("admin@nars.shop"); err == nil && existing != nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating default admin user...")
	admin := &models.User{
		FirstName: "Admin",
		Email:     "admin@nars.shop",
		Role:      string(models.RoleAdmin),
		IsActive:  true,
	}

	if err := userService.Register(admin, "admin123"); err != nil {
		return err
	}

	log.Println("Admin user created successfully")
	log.Println("Email: admin@nars.shop")
	log.Println("Password: admin123")
	return nil
}
