package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// AssetRouteConfig holds dependencies for asset routes.
type AssetRouteConfig struct {
	AssetHandler   *handlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAssetRoutes configures asset upload, delete and download routes.
func SetupAssetRoutes(api *gin.RouterGroup, cfg *AssetRouteConfig) {
	assets := api.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.POST("", cfg.AssetHandler.Upload)
		assets.DELETE("/:id", cfg.AssetHandler.Delete)
		assets.GET("/:id/download", cfg.AssetHandler.Download)
	}
}
