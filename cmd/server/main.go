package main

import (
	"log"
	"time"

	"menu_orders/internal/config"
	"menu_orders/internal/database"
	"menu_orders/internal/handlers"
	"menu_orders/internal/migrations"
	"menu_orders/internal/redis"
	"menu_orders/internal/repository"
	"menu_orders/internal/services"
	"menu_orders/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize WhatsApp deep-link client
	whatsappClient := whatsapp.NewClient(cfg.MessagingHost)

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	identityRepo := repository.NewIdentityRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Initialize services
	authService := services.NewAuthService(identityRepo, userRepo, redisClient, time.Duration(cfg.TokenTTL)*time.Second)
	whatsappService := services.NewWhatsAppService(whatsappClient)
	checkoutService := services.NewCheckoutService(orderRepo, orderItemRepo, customerRepo, whatsappService)
	adminService := services.NewAdminService(
		authService,
		restaurantRepo,
		userRepo,
		productRepo,
		categoryRepo,
		customerRepo,
		orderRepo,
		orderItemRepo,
		subscriptionRepo,
	)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(restaurantRepo, productRepo, categoryRepo)
	cartHandler := handlers.NewCartHandler(redisClient, productRepo, time.Duration(cfg.CartTTL)*time.Second)
	checkoutHandler := handlers.NewCheckoutHandler(redisClient, restaurantRepo, checkoutService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/menu/:slug", menuHandler.GetMenu)

		api.GET("/cart/:session_id", cartHandler.GetCart)
		api.POST("/cart/:session_id/items", cartHandler.AddItem)
		api.PUT("/cart/:session_id/items", cartHandler.UpdateQuantity)
		api.DELETE("/cart/:session_id/items", cartHandler.RemoveItem)
		api.DELETE("/cart/:session_id", cartHandler.ClearCart)

		api.POST("/checkout/:session_id", checkoutHandler.Submit)

		admin := api.Group("/admin")
		{
			admin.POST("/restaurants/delete", adminHandler.DeleteRestaurant)
			admin.POST("/users/delete", adminHandler.DeleteUser)
			admin.POST("/restaurants/transfer", adminHandler.TransferOwnership)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
