package usecases

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/application/accessrequest/dto"
	notificationusecases "github.com/brandvault/brandvault/internal/application/notification/usecases"
	"github.com/brandvault/brandvault/internal/application/testutil"
	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/metrics"
	"github.com/brandvault/brandvault/internal/shared/biztime"
	"github.com/brandvault/brandvault/internal/shared/errors"
)

type fixture struct {
	env    *testutil.Env
	create *CreateAccessRequestUseCase
	update *UpdateAccessRequestStatusUseCase
	list   *ListAccessRequestsUseCase
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	env := testutil.NewEnv(t)
	m := metrics.New()
	dispatcher := notificationusecases.NewDispatcher(env.Users, env.Notifications, m, env.Logger)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &fixture{
		env:    env,
		create: NewCreateAccessRequestUseCase(env.Companies, env.Brands, env.AccessRequests, dispatcher, m, env.Logger),
		update: NewUpdateAccessRequestStatusUseCase(env.Brands, env.AccessRequests, dispatcher, m, biztime.FixedClock{At: now}, env.Logger),
		list:   NewListAccessRequestsUseCase(env.Companies, env.Brands, env.AccessRequests, env.Logger),
		now:    now,
	}
}

func TestCreateAccessRequest(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	aMember := f.env.SeedUser(t, a.Company.ID(), "member@acme.test", user.RoleUser)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)

	resp, err := f.create.Execute(t.Context(), b.Principal(), CreateAccessRequestCommand{
		BrandID: a.Brand.ID(),
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "FULL", resp.AccessType)
	assert.Nil(t, resp.ApprovedAt)

	assert.Equal(t, 1, f.env.CountNotifications(t, a.Master.ID(), notification.TypeAccessRequest))
	assert.Equal(t, 1, f.env.CountNotifications(t, aMember.ID(), notification.TypeAccessRequest))
	assert.Equal(t, 0, f.env.CountNotifications(t, b.Master.ID(), notification.TypeAccessRequest))
}

func TestCreateAccessRequest_Rejections(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)
	unpaid := f.env.SeedTenant(t, "Unpaid", company.SubscriptionStatusUnpaid)
	f.env.SeedAccessRequest(t, b, a, accessrequest.StatusDenied)

	tests := []struct {
		name    string
		tenant  *testutil.Tenant
		cmd     CreateAccessRequestCommand
		checkFn func(error) bool
	}{
		{
			name:    "own brand",
			tenant:  a,
			cmd:     CreateAccessRequestCommand{BrandID: a.Brand.ID()},
			checkFn: errors.IsValidationError,
		},
		{
			name:    "unknown brand",
			tenant:  a,
			cmd:     CreateAccessRequestCommand{BrandID: "brd_missing"},
			checkFn: errors.IsValidationError,
		},
		{
			name:    "existing pair even when terminal",
			tenant:  b,
			cmd:     CreateAccessRequestCommand{BrandID: a.Brand.ID()},
			checkFn: errors.IsConflictError,
		},
		{
			name:    "subscription required",
			tenant:  unpaid,
			cmd:     CreateAccessRequestCommand{BrandID: a.Brand.ID()},
			checkFn: errors.IsForbiddenError,
		},
		{
			name:    "unknown access type",
			tenant:  a,
			cmd:     CreateAccessRequestCommand{BrandID: b.Brand.ID(), AccessType: "ROOT"},
			checkFn: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Create(t.Context(), tt.tenant.Principal(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.checkFn(err), "unexpected error: %v", err)
		})
	}
}

func TestCreateAccessRequest_ConcurrentDuplicatesOnlyOneWins(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.create.Create(t.Context(), b.Principal(), CreateAccessRequestCommand{BrandID: a.Brand.ID()})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.IsConflictError(err):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestUpdateAccessRequestStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantType   notification.Type
		wantStamp  bool
		wantAccess bool
	}{
		{name: "approve", status: "APPROVED", wantType: notification.TypeAccessApproved, wantStamp: true, wantAccess: true},
		{name: "deny", status: "denied", wantType: notification.TypeAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
			b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)
			req := f.env.SeedAccessRequest(t, b, a, accessrequest.StatusPending)

			result, err := f.update.Update(t.Context(), a.Principal(), req.ID(), tt.status)
			require.NoError(t, err)
			require.Len(t, result.Intents, 1)
			assert.Equal(t, tt.wantType, result.Intents[0].Type)
			assert.Equal(t, []string{b.Company.ID()}, result.Intents[0].CompanyIDs)

			if tt.wantStamp {
				require.NotNil(t, result.Request.ApprovedAt())
				assert.Equal(t, f.now, *result.Request.ApprovedAt())
			} else {
				assert.Nil(t, result.Request.ApprovedAt())
			}

			stored, err := f.env.AccessRequests.GetByID(t.Context(), req.ID())
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, stored.Status().GrantsAccess())
		})
	}
}

func TestUpdateAccessRequestStatus_NotifiesRequesterCompany(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)
	req := f.env.SeedAccessRequest(t, b, a, accessrequest.StatusPending)

	_, err := f.update.Execute(t.Context(), a.Principal(), req.ID(), "APPROVED")
	require.NoError(t, err)

	assert.Equal(t, 1, f.env.CountNotifications(t, b.Master.ID(), notification.TypeAccessApproved))
	assert.Equal(t, 0, f.env.CountNotifications(t, a.Master.ID(), notification.TypeAccessApproved))
}

func TestUpdateAccessRequestStatus_Rejections(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusCancelled)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)
	c := f.env.SeedTenant(t, "Gamma", company.SubscriptionStatusActive)
	pending := f.env.SeedAccessRequest(t, b, a, accessrequest.StatusPending)
	decided := f.env.SeedAccessRequest(t, c, a, accessrequest.StatusApproved)

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.update.Update(t.Context(), a.Principal(), "arq_missing", "APPROVED")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("only the target may decide", func(t *testing.T) {
		_, err := f.update.Update(t.Context(), b.Principal(), pending.ID(), "APPROVED")
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("pending is not a target", func(t *testing.T) {
		_, err := f.update.Update(t.Context(), a.Principal(), pending.ID(), "PENDING")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("terminal requests never move", func(t *testing.T) {
		_, err := f.update.Update(t.Context(), a.Principal(), decided.ID(), "DENIED")
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, 0, f.env.CountNotifications(t, c.Master.ID(), notification.TypeAccessDenied))
	})

	t.Run("lapsed target can still decide", func(t *testing.T) {
		_, err := f.update.Update(t.Context(), a.Principal(), pending.ID(), "DENIED")
		assert.NoError(t, err)
	})
}

func TestListAccessRequests(t *testing.T) {
	f := newFixture(t)
	a := f.env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	b := f.env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)
	c := f.env.SeedTenant(t, "Gamma", company.SubscriptionStatusActive)
	f.env.SeedAccessRequest(t, b, a, accessrequest.StatusPending)
	f.env.SeedAccessRequest(t, c, a, accessrequest.StatusApproved)
	f.env.SeedAccessRequest(t, a, c, accessrequest.StatusDenied)

	received, err := f.list.Execute(t.Context(), a.Principal(), dto.ListTypeReceived)
	require.NoError(t, err)
	require.Len(t, received.Requests, 2)
	names := []string{received.Requests[0].RequesterCompanyName, received.Requests[1].RequesterCompanyName}
	assert.ElementsMatch(t, []string{"Beta", "Gamma"}, names)

	sent, err := f.list.Execute(t.Context(), a.Principal(), dto.ListTypeSent)
	require.NoError(t, err)
	require.Len(t, sent.Requests, 1)
	assert.Equal(t, "Gamma", sent.Requests[0].BrandName)
	assert.Equal(t, "DENIED", sent.Requests[0].Status)

	empty, err := f.list.Execute(t.Context(), b.Principal(), dto.ListTypeReceived)
	require.NoError(t, err)
	assert.NotNil(t, empty.Requests)
	assert.Empty(t, empty.Requests)

	_, err = f.list.Execute(t.Context(), a.Principal(), dto.ListType("all"))
	assert.True(t, errors.IsValidationError(err))
}
