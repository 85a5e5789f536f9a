package migrations

import (
	"log"

	"menu_orders/internal/models"
	"menu_orders/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the default superadmin.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Identity{},
		&models.User{},
		&models.Restaurant{},
		&models.Subscription{},
		&models.Category{},
		&models.Product{},
		&models.Variation{},
		&models.Ingredient{},
		&models.ProductCategory{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	// Create default data
	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the superadmin identity and user
func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	identityRepo := repository.NewIdentityRepository(db)

	// Check if superadmin already exists
	existingUser, err := userRepo.GetByEmail("admin@menu-orders.local")
	if err == nil && existingUser != nil {
		log.Println("Superadmin user already exists")
		return nil
	}

	log.Println("Creating superadmin user...")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	identity := &models.Identity{
		ID:           "superadmin-seed",
		Email:        "admin@menu-orders.local",
		PasswordHash: string(hashedPassword),
	}
	if err := identityRepo.Create(identity); err != nil {
		return err
	}

	superAdmin := &models.User{
		IdentityID: identity.ID,
		Name:       "Administrator",
		Email:      identity.Email,
		Role:       string(models.SuperAdmin),
		IsActive:   true,
	}
	if err := userRepo.Create(superAdmin); err != nil {
		return err
	}

	log.Println("Superadmin user created successfully")
	log.Println("Email: admin@menu-orders.local")
	log.Println("Password: admin123")
	return nil
}
