package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// AccessRequestRouteConfig holds dependencies for access request routes.
type AccessRequestRouteConfig struct {
	AccessRequestHandler *handlers.AccessRequestHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// SetupAccessRequestRoutes configures access request routes.
func SetupAccessRequestRoutes(api *gin.RouterGroup, cfg *AccessRequestRouteConfig) {
	requests := api.Group("/access-requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.GET("", cfg.AccessRequestHandler.List)
		requests.POST("", cfg.AccessRequestHandler.Create)
		requests.PATCH("/:id", cfg.AccessRequestHandler.UpdateStatus)
	}
}
