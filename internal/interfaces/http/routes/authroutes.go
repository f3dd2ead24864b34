package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
