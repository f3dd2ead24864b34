package http

import (
	"context"

	"github.com/brandvault/brandvault/internal/infrastructure/blobstore"
	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// allHandlers holds every HTTP handler.
type allHandlers struct {
	auth          *handlers.AuthHandler
	brand         *handlers.BrandHandler
	accessRequest *handlers.AccessRequestHandler
	asset         *handlers.AssetHandler
	note          *handlers.NoteHandler
	notification  *handlers.NotificationHandler
	team          *handlers.TeamHandler
	billing       *handlers.BillingHandler
	health        *handlers.HealthHandler
	blobs         *handlers.BlobHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	h := &allHandlers{
		auth: handlers.NewAuthHandler(u.signup, u.login, u.currentUser, c.cfg.Auth.Cookie, log),
		brand: handlers.NewBrandHandler(
			u.getOwnBrand, u.updateOwnBrand, u.getBrandDetail, u.searchBrands, u.browseBrands, u.quickCreateBrand, log,
		),
		accessRequest: handlers.NewAccessRequestHandler(u.createAccessRequest, u.updateAccessRequestStatus, u.listAccessRequests, log),
		asset:         handlers.NewAssetHandler(u.uploadAsset, u.deleteAsset, u.downloadAsset, log),
		note:          handlers.NewNoteHandler(u.listNotes, u.createNote, u.deleteNote, log),
		notification:  handlers.NewNotificationHandler(u.listNotifications, u.markAsRead, u.markAllAsRead, u.unreadCount, log),
		team:          handlers.NewTeamHandler(u.listMembers, u.addMember, u.removeMember, log),
		billing:       handlers.NewBillingHandler(u.billingStatus, u.checkoutSession, u.portalSession, u.handleWebhook, log),
		health:        handlers.NewHealthHandler(c.healthChecks(), c.version, log),
	}
	if local, ok := c.svcs.blobs.(*blobstore.LocalStore); ok {
		h.blobs = handlers.NewBlobHandler(local, log.Named("blobs"))
	}
	return h
}

func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, c.repos.userRepo, c.cfg.Auth.Cookie.Name, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.svcs.limiter, c.cfg.RateLimit.Limit, c.cfg.RateLimit.Window(), c.metrics, c.log,
	)
}
