package main

import (
	"context"
	"log"
	"nars_shop/internal/config"
	"nars_shop/internal/database"
	"nars_shop/internal/handlers"
	"nars_shop/internal/migrations"
	"nars_shop/internal/redis"
	"nars_shop/internal/repository"
	"nars_shop/internal/services"
	"time"

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

	// Initialize Redis (session store)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	taskRepo := repository.NewScheduledTaskRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, ratingRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, taskRepo, cfg.DeliveryFee)
	salesService := services.NewSalesService(orderRepo, productRepo)
	schedulerService := services.NewSchedulerService(taskRepo, orderRepo)

	// Start the deferred-effect scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go schedulerService.Run(ctx, cfg.SchedulerPollPeriod)

	// Initialize handlers
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authHandler := handlers.NewAuthHandler(userService, redisClient, sessionTTL, cfg.AdminPIN)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	salesHandler := handlers.NewSalesHandler(salesService)

	// Setup routes
	router := gin.Default()

	// Public endpoints
	router.POST("/signup", authHandler.Signup)
	router.POST("/signin", authHandler.Signin)
	router.GET("/logout", authHandler.Logout)
	router.GET("/products", productHandler.ListProducts)

	// Storefront endpoints (authenticated customer session)
	store := router.Group("/", handlers.RequireSession(redisClient))
	{
		store.GET("/user", authHandler.CurrentUser)
		store.POST("/validate-pin", authHandler.ValidatePin)
		store.POST("/place-order", orderHandler.PlaceOrder)
		store.GET("/all-orders", orderHandler.ListUserOrders)
		store.PUT("/orders/:id/cancel", orderHandler.CancelOrder)
		store.POST("/cancel-order/:id", orderHandler.CancelOrder)
		store.POST("/products/:id/rating", productHandler.RateProduct)
	}

	// Admin endpoints
	admin := router.Group("/", handlers.RequireSession(redisClient), handlers.RequireAdmin())
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.GET("/orders", orderHandler.ListSalesReport)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		admin.PUT("/orders/:id", orderHandler.UpdateOrderDate)
		admin.DELETE("/orders/:id", orderHandler.DeleteOrder)
		admin.DELETE("/orders/:id/salesreport", orderHandler.RemoveFromSalesReport)

		admin.GET("/sales-data", salesHandler.SalesData)
		admin.GET("/top-products", salesHandler.TopProducts)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
