package http

import (
	"context"
	"fmt"

	brandUsecases "github.com/brandvault/brandvault/internal/application/brand/usecases"
	notificationUsecases "github.com/brandvault/brandvault/internal/application/notification/usecases"
	"github.com/brandvault/brandvault/internal/infrastructure/auth"
	"github.com/brandvault/brandvault/internal/infrastructure/billing"
	"github.com/brandvault/brandvault/internal/infrastructure/blobstore"
	"github.com/brandvault/brandvault/internal/infrastructure/cache"
	"github.com/brandvault/brandvault/internal/infrastructure/markdown"
	"github.com/brandvault/brandvault/internal/infrastructure/permission"
	"github.com/brandvault/brandvault/internal/infrastructure/ratelimit"
	shareddb "github.com/brandvault/brandvault/internal/shared/db"
)

// services holds infrastructure adapters and cross-cutting application
// services shared by several use cases.
type services struct {
	txManager  *shareddb.TransactionManager
	jwt        *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	gateway    *billing.StripeGateway
	blobs      blobstore.Store
	enforcer   *permission.Enforcer
	renderer   markdown.Renderer
	limiter    ratelimit.RateLimiter
	resolver   *brandUsecases.Resolver
	dispatcher *notificationUsecases.Dispatcher
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	client, err := cache.NewRedisClient(ctx, c.cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = client
	if client != nil {
		c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
	} else {
		c.log.Infow("redis disabled, using in-process rate limiting")
	}
	return nil
}

func (c *Container) newServices(ctx context.Context) (*services, error) {
	storageCfg := c.cfg.Storage
	if storageCfg.SigningKey == "" {
		storageCfg.SigningKey = c.cfg.Auth.JWT.Secret
	}
	blobs, err := blobstore.New(ctx, storageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	rules, err := permission.LoadRules(c.cfg.Permission.PolicyFile)
	if err != nil {
		c.log.Warnw("falling back to built-in permission policy", "policy_file", c.cfg.Permission.PolicyFile, "error", err)
		rules = permission.DefaultRules()
	}
	enforcer, err := permission.NewEnforcer(c.db, rules, c.log.Named("permission"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	gateway := billing.NewStripeGateway(c.cfg.Billing)
	if !gateway.Enabled() {
		c.log.Warnw("billing provider not configured, billing endpoints will return dependency errors")
	}

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}

	return &services{
		txManager: shareddb.NewTransactionManager(c.db),
		jwt:       auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.TTL()),
		hasher:    auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		gateway:   gateway,
		blobs:     blobs,
		enforcer:  enforcer,
		renderer:  markdown.NewRenderer(),
		limiter:   limiter,
		resolver: brandUsecases.NewResolver(
			c.repos.companyRepo, c.repos.accessRequestRepo, c.repos.assetRepo, c.log.Named("brand.resolver"),
		),
		dispatcher: notificationUsecases.NewDispatcher(
			c.repos.userRepo, c.repos.notificationRepo, c.metrics, c.log.Named("notification.dispatcher"),
		),
	}, nil
}
