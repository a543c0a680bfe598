package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wekesa/dukapos-api/internal/config"
	domainRepo "github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/internal/presentation/http/handler"
	"github.com/wekesa/dukapos-api/internal/presentation/http/middleware"
	"github.com/wekesa/dukapos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Location *handler.LocationHandler
	Stock    *handler.StockHandler
	Checkout *handler.CheckoutHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Profile)

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", middleware.RequireRole("admin", "manager"), h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Product.Update)
		products.PATCH("/:id/status", middleware.RequireRole("admin", "manager"), h.Product.UpdateStatus)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	// Locations
	locations := protected.Group("/locations")
	{
		locations.GET("", h.Location.List)
		locations.POST("", middleware.RequireRole("admin", "manager"), h.Location.Create)
		locations.GET("/:id", h.Location.Get)
		locations.DELETE("/:id", middleware.RequireRole("admin"), h.Location.Deactivate)
	}

	// Stock ledger
	stock := protected.Group("/stock")
	{
		stock.POST("/receive", middleware.RequireRole("admin", "manager"), h.Stock.Receive)
		stock.POST("/issue", middleware.RequireRole("admin", "manager"), h.Stock.Issue)
		stock.POST("/transfer", middleware.RequireRole("admin", "manager"), h.Stock.Transfer)
		stock.POST("/adjust", middleware.RequireRole("admin", "manager"), h.Stock.Adjust)
		stock.GET("/balances", h.Stock.ListBalances)
		stock.GET("/movements", h.Stock.ListMovements)
		stock.GET("/audit", middleware.RequireRole("admin", "manager"), h.Stock.Audit)
	}

	// Point of sale. Checkout requires an Idempotency-Key so a retried
	// request replays the original sale instead of selling twice.
	pos := protected.Group("/pos")
	{
		pos.POST("/checkout",
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Checkout.Checkout,
		)
		pos.GET("/sales", h.Checkout.ListSales)
		pos.GET("/sales/:id", h.Checkout.GetSale)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/top-products", h.Report.TopProducts)
		reports.GET("/inventory", h.Report.Inventory)
	}
}
