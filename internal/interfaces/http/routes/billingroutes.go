package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for billing routes.
type BillingRouteConfig struct {
	BillingHandler *handlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBillingRoutes configures billing routes and the provider webhook.
func SetupBillingRoutes(api *gin.RouterGroup, cfg *BillingRouteConfig) {
	billing := api.Group("/billing")
	billing.Use(cfg.AuthMiddleware.RequireAuth())
	{
		billing.GET("", cfg.BillingHandler.Status)
		billing.POST("/checkout", cfg.BillingHandler.Checkout)
		billing.POST("/portal", cfg.BillingHandler.Portal)
	}

	// Signature-verified, no session
	api.POST("/webhooks/stripe", cfg.BillingHandler.Webhook)
}
