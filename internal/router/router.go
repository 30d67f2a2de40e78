// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/config"
	"github.com/mercata/catalog-api/internal/handlers"
	"github.com/mercata/catalog-api/internal/middleware"
	"github.com/mercata/catalog-api/internal/repository"
	"github.com/mercata/catalog-api/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	currencyRepo := repository.NewCurrencyRepo(db)
	productRepo := repository.NewProductRepo(db)
	priceRepo := repository.NewProductPriceRepo(db)

	// Initialize services
	currencyService := services.NewCurrencyService(currencyRepo)
	productService := services.NewProductService(productRepo, currencyRepo)
	priceService := services.NewProductPriceService(priceRepo, productRepo, currencyRepo)

	// Initialize handlers
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	productHandler := handlers.NewProductHandler(productService)
	priceHandler := handlers.NewProductPriceHandler(priceService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	apiLimiter := middleware.PerMinute(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	api := r.Group("/api")
	api.Use(apiLimiter.Middleware())
	{
		currencies := api.Group("/currencies")
		{
			currencies.GET("", currencyHandler.GetCurrencies)
			currencies.POST("", currencyHandler.CreateCurrency)
			currencies.GET("/:id", currencyHandler.GetCurrency)
			currencies.PUT("/:id", currencyHandler.UpdateCurrency)
			currencies.PATCH("/:id", currencyHandler.UpdateCurrency)
			currencies.DELETE("/:id", currencyHandler.DeleteCurrency)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Nested price resource, index and store only. The segment must be
		// named :id here too; gin rejects two param names at one position.
		prices := api.Group("/products/:id/prices")
		{
			prices.GET("", priceHandler.GetPrices)
			prices.POST("", priceHandler.CreatePrice)
		}
	}

	return r
}
