package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/application/testutil"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/metrics"
)

type failingAudience struct{}

func (failingAudience) ListIDsByCompanyIDs(context.Context, []string) ([]string, error) {
	return nil, stderrors.New("database is gone")
}

func TestDispatcher_FansOutToEveryMember(t *testing.T) {
	env := testutil.NewEnv(t)
	a := env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	member := env.SeedUser(t, a.Company.ID(), "member@acme.test", user.RoleUser)
	b := env.SeedTenant(t, "Beta", company.SubscriptionStatusActive)

	d := NewDispatcher(env.Users, env.Notifications, metrics.New(), env.Logger)
	n := d.Dispatch(t.Context(), notification.AccessApproved(a.Company.ID(), "Beta"))

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, env.CountNotifications(t, a.Master.ID(), notification.TypeAccessApproved))
	assert.Equal(t, 1, env.CountNotifications(t, member.ID(), notification.TypeAccessApproved))
	assert.Equal(t, 0, env.CountNotifications(t, b.Master.ID(), notification.TypeAccessApproved))
}

func TestDispatcher_EmptyIntentsAreSkipped(t *testing.T) {
	env := testutil.NewEnv(t)
	d := NewDispatcher(env.Users, env.Notifications, nil, env.Logger)

	assert.Equal(t, 0, d.Dispatch(t.Context(), notification.NewAssets(nil, "Acme", 1)))
	assert.Equal(t, 0, d.Dispatch(t.Context()))
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	env := testutil.NewEnv(t)
	d := NewDispatcher(failingAudience{}, env.Notifications, nil, env.Logger)

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, d.Dispatch(t.Context(), notification.AccessDenied("cmp_x", "Acme")))
	})
}

func TestDispatcher_IgnoresCancelledContext(t *testing.T) {
	env := testutil.NewEnv(t)
	a := env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	d := NewDispatcher(env.Users, env.Notifications, nil, env.Logger)
	assert.Equal(t, 1, d.Dispatch(ctx, notification.AccessApproved(a.Company.ID(), "Beta")))
}

func TestNotificationUseCases(t *testing.T) {
	env := testutil.NewEnv(t)
	a := env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	other := env.SeedTenant(t, "Other", company.SubscriptionStatusActive)
	p := a.Principal()

	d := NewDispatcher(env.Users, env.Notifications, nil, env.Logger)
	d.Dispatch(t.Context(),
		notification.AccessApproved(a.Company.ID(), "One"),
		notification.AccessDenied(a.Company.ID(), "Two"),
		notification.AccessApproved(other.Company.ID(), "Three"),
	)

	list := NewListNotificationsUseCase(env.Notifications, env.Logger)
	markRead := NewMarkNotificationAsReadUseCase(env.Notifications, env.Logger)
	markAll := NewMarkAllAsReadUseCase(env.Notifications, env.Logger)
	unread := NewGetUnreadCountUseCase(env.Notifications, env.Logger)

	resp, err := list.Execute(t.Context(), p, ListNotificationsQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.UnreadCount)

	t.Run("mark read is scoped to the recipient", func(t *testing.T) {
		otherList, err := list.Execute(t.Context(), other.Principal(), ListNotificationsQuery{})
		require.NoError(t, err)
		require.Len(t, otherList.Notifications, 1)

		require.NoError(t, markRead.Execute(t.Context(), p, otherList.Notifications[0].ID))
		require.NoError(t, markRead.Execute(t.Context(), p, "ntf_missing"))

		otherUnread, err := unread.Execute(t.Context(), other.Principal())
		require.NoError(t, err)
		assert.Equal(t, int64(1), otherUnread.Count)

		mine, err := unread.Execute(t.Context(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(2), mine.Count)
	})

	t.Run("mark one then all", func(t *testing.T) {
		require.NoError(t, markRead.Execute(t.Context(), p, resp.Notifications[0].ID))
		require.NoError(t, markRead.Execute(t.Context(), p, resp.Notifications[0].ID))

		count, err := unread.Execute(t.Context(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)

		onlyUnread, err := list.Execute(t.Context(), p, ListNotificationsQuery{UnreadOnly: true})
		require.NoError(t, err)
		assert.Len(t, onlyUnread.Notifications, 1)

		all, err := markAll.Execute(t.Context(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(1), all.Updated)

		count, err = unread.Execute(t.Context(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count.Count)
	})

	t.Run("empty list renders as empty slice", func(t *testing.T) {
		lonely := env.SeedTenant(t, "Lonely", company.SubscriptionStatusUnpaid)
		resp, err := list.Execute(t.Context(), lonely.Principal(), ListNotificationsQuery{Limit: 500})
		require.NoError(t, err)
		assert.NotNil(t, resp.Notifications)
		assert.Empty(t, resp.Notifications)
	})
}
