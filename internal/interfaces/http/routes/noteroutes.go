package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// NoteRouteConfig holds dependencies for note routes.
type NoteRouteConfig struct {
	NoteHandler    *handlers.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupNoteRoutes configures private note routes.
func SetupNoteRoutes(api *gin.RouterGroup, cfg *NoteRouteConfig) {
	notes := api.Group("/notes")
	notes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notes.GET("", cfg.NoteHandler.List)
		notes.POST("", cfg.NoteHandler.Create)
		notes.DELETE("/:id", cfg.NoteHandler.Delete)
	}
}
