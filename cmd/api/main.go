package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/application/service"
	"github.com/wekesa/dukapos-api/internal/config"
	"github.com/wekesa/dukapos-api/internal/infrastructure/cache"
	"github.com/wekesa/dukapos-api/internal/infrastructure/database"
	"github.com/wekesa/dukapos-api/internal/infrastructure/repository"
	"github.com/wekesa/dukapos-api/internal/presentation/http/handler"
	"github.com/wekesa/dukapos-api/internal/presentation/http/routes"
	"github.com/wekesa/dukapos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the POS location and optional admin account
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	posLocationID, err := uuid.Parse(cfg.POS.LocationID)
	if err != nil {
		log.Fatalf("Invalid POS_LOCATION_ID: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	stockRepo := repository.NewStockRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	transactor := repository.NewTransactor(db)

	// Periodically purge expired idempotency keys
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: idempotency key cleanup failed: %v", err)
			}
		}
	}()

	// Initialize report cache; without Redis reports fall back to direct queries
	var reportCache cache.ReportCache = cache.NoopReportCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("Warning: Redis unreachable, report caching disabled: %v", err)
		} else {
			reportCache = redisCache
		}
		cancel()
	}

	// Initialize services
	ledgerService := service.NewLedgerService(stockRepo, productRepo, locationRepo, transactor)
	stockService := service.NewStockService(ledgerService, stockRepo, productRepo, transactor)
	checkoutService := service.NewCheckoutService(productRepo, stockRepo, saleRepo, ledgerService, transactor, posLocationID)
	productService := service.NewProductService(productRepo)
	locationService := service.NewLocationService(locationRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	reportService := service.NewReportService(saleRepo, productRepo, stockRepo, reportCache)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Location: handler.NewLocationHandler(locationService),
		Stock:    handler.NewStockHandler(stockService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
