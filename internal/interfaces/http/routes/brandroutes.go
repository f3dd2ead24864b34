package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// BrandRouteConfig holds dependencies for brand routes.
type BrandRouteConfig struct {
	BrandHandler   *handlers.BrandHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupBrandRoutes configures own-brand, directory and search routes.
func SetupBrandRoutes(api *gin.RouterGroup, cfg *BrandRouteConfig) {
	own := api.Group("/brand")
	own.Use(cfg.AuthMiddleware.RequireAuth())
	{
		own.GET("", cfg.BrandHandler.GetOwn)
		own.PUT("", cfg.BrandHandler.UpdateOwn)
	}

	brands := api.Group("/brands")
	{
		// Public endpoints
		brands.GET("/browse", cfg.AuthMiddleware.OptionalAuth(), cfg.BrandHandler.Browse)
		brands.POST("/quick-create", cfg.RateLimiter.Limit(), cfg.BrandHandler.QuickCreate)

		brands.GET("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.BrandHandler.GetDetail)
	}

	api.GET("/search", cfg.AuthMiddleware.RequireAuth(), cfg.BrandHandler.Search)
}
