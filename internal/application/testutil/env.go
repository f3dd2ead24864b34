// Package testutil wires real repositories over an in-memory SQLite database
// for use-case tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/infrastructure/repository"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/db"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// TestPasswordHash stands in for a bcrypt hash on seeded users.
const TestPasswordHash = "$2a$04$seeded.hash.for.tests.only"

type Env struct {
	DB             *gorm.DB
	TxManager      *db.TransactionManager
	Companies      company.Repository
	Users          user.Repository
	Brands         brand.Repository
	Assets         asset.Repository
	AccessRequests accessrequest.Repository
	Notes          note.Repository
	Notifications  notification.Repository
	Logger         logger.Interface
}

func NewEnv(t *testing.T) *Env {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	return &Env{
		DB:             gdb,
		TxManager:      db.NewTransactionManager(gdb),
		Companies:      repository.NewCompanyRepository(gdb, log),
		Users:          repository.NewUserRepository(gdb, log),
		Brands:         repository.NewBrandRepository(gdb, log),
		Assets:         repository.NewAssetRepository(gdb, log),
		AccessRequests: repository.NewAccessRequestRepository(gdb, log),
		Notes:          repository.NewNoteRepository(gdb, log),
		Notifications:  repository.NewNotificationRepository(gdb, log),
		Logger:         log,
	}
}

// Tenant is a seeded company with its MASTER user and brand.
type Tenant struct {
	Company *company.Company
	Master  *user.User
	Brand   *brand.Brand
}

func (tn *Tenant) Principal() *authorization.Principal {
	return PrincipalFor(tn.Master)
}

func PrincipalFor(u *user.User) *authorization.Principal {
	return &authorization.Principal{
		UserID:    u.ID(),
		CompanyID: u.CompanyID(),
		Role:      u.Role().String(),
		Email:     u.Email(),
	}
}

// SeedTenant creates a company in the given status, a MASTER user whose email
// is derived from the name, and a brand named after the company.
func (e *Env) SeedTenant(t *testing.T, name string, status company.SubscriptionStatus) *Tenant {
	t.Helper()
	ctx := t.Context()

	c, err := company.NewCompany(name)
	require.NoError(t, err)
	require.NoError(t, c.ApplySubscription(status, "", nil))
	require.NoError(t, e.Companies.Create(ctx, c))

	master := e.SeedUser(t, c.ID(), "master@"+slug(name)+".test", user.RoleMaster)

	b, err := brand.NewBrand(c.ID(), name)
	require.NoError(t, err)
	require.NoError(t, e.Brands.Create(ctx, b))

	return &Tenant{Company: c, Master: master, Brand: b}
}

func (e *Env) SeedUser(t *testing.T, companyID, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(companyID, email, TestPasswordHash, "Test", "User", role)
	require.NoError(t, err)
	require.NoError(t, e.Users.Create(t.Context(), u))
	return u
}

func (e *Env) SeedAsset(t *testing.T, brandID string, category asset.Category) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(brandID, brandID+"/"+category.Slug()+"/1-logo.png", asset.Metadata{
		OriginalName: "logo.png",
		FileType:     asset.MIMEPNG,
		Size:         128,
		Category:     category,
	})
	require.NoError(t, err)
	require.NoError(t, e.Assets.Create(t.Context(), a))
	return a
}

// SeedAccessRequest stores a request from requester to target in the given status.
func (e *Env) SeedAccessRequest(t *testing.T, requester, target *Tenant, status accessrequest.Status) *accessrequest.AccessRequest {
	t.Helper()
	req, err := accessrequest.NewAccessRequest(requester.Company.ID(), target.Brand.ID(), target.Company.ID(), accessrequest.AccessTypeFull, "")
	require.NoError(t, err)
	require.NoError(t, e.AccessRequests.Create(t.Context(), req))
	if status != accessrequest.StatusPending {
		require.NoError(t, req.Transition(status, req.CreatedAt()))
		require.NoError(t, e.AccessRequests.SaveTransition(t.Context(), req, accessrequest.StatusPending))
	}
	return req
}

// CountNotifications counts stored notifications of type for recipient.
func (e *Env) CountNotifications(t *testing.T, recipientID string, ntype notification.Type) int {
	t.Helper()
	items, err := e.Notifications.ListByRecipient(t.Context(), recipientID, false, 100)
	require.NoError(t, err)
	n := 0
	for _, item := range items {
		if item.Type() == ntype {
			n++
		}
	}
	return n
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}
