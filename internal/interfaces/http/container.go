package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/infrastructure/config"
	"github.com/brandvault/brandvault/internal/infrastructure/metrics"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics
	version string

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer wires every component. Redis is optional; the blob store,
// the permission enforcer and the billing gateway are not.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface, version string) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
		version: version,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	c.repos = newRepositories(db, log)

	svcs, err := c.newServices(ctx)
	if err != nil {
		return nil, err
	}
	c.svcs = svcs

	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()
	c.initMiddlewares()

	return c, nil
}

// Engine returns the gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container. The database is
// owned by the caller.
func (c *Container) Shutdown(_ context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis: %w", err)
		}
		c.log.Infow("redis connection closed")
	}
	return nil
}
