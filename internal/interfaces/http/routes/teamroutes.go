package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// TeamRouteConfig holds dependencies for team routes.
type TeamRouteConfig struct {
	TeamHandler          *handlers.TeamHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTeamRoutes configures team management routes.
func SetupTeamRoutes(api *gin.RouterGroup, cfg *TeamRouteConfig) {
	team := api.Group("/team")
	team.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceTeam, permission.ActionRead),
	)
	{
		team.GET("", cfg.TeamHandler.List)

		manage := cfg.PermissionMiddleware.RequirePermission(permission.ResourceTeam, permission.ActionManage)
		team.POST("", manage, cfg.TeamHandler.Add)
		team.DELETE("/:id", manage, cfg.TeamHandler.Remove)
	}
}
