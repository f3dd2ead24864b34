package http

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
	"github.com/brandvault/brandvault/internal/interfaces/http/routes"
)

// SetupRoutes registers global middleware and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Metrics(c.metrics))

	c.engine.GET("/health", c.hdlrs.health.Health)
	c.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))

	if c.hdlrs.blobs != nil {
		c.engine.GET("/uploads/*key", c.hdlrs.blobs.Serve)
	}

	api := c.engine.Group("/api")
	api.Use(middleware.APIVersion())

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupBrandRoutes(api, &routes.BrandRouteConfig{
		BrandHandler:   c.hdlrs.brand,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupAccessRequestRoutes(api, &routes.AccessRequestRouteConfig{
		AccessRequestHandler: c.hdlrs.accessRequest,
		AuthMiddleware:       c.authMiddleware,
	})

	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:   c.hdlrs.asset,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupNoteRoutes(api, &routes.NoteRouteConfig{
		NoteHandler:    c.hdlrs.note,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupTeamRoutes(api, &routes.TeamRouteConfig{
		TeamHandler:          c.hdlrs.team,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupBillingRoutes(api, &routes.BillingRouteConfig{
		BillingHandler: c.hdlrs.billing,
		AuthMiddleware: c.authMiddleware,
	})
}
