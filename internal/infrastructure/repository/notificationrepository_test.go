package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func seedNotifications(t *testing.T, repo notification.Repository, recipient string, n int) []*notification.Notification {
	t.Helper()
	list := make([]*notification.Notification, 0, n)
	for i := 0; i < n; i++ {
		item, err := notification.NewNotification(recipient, notification.TypeNewAssets, "New Assets Available", "content")
		require.NoError(t, err)
		list = append(list, item)
	}
	require.NoError(t, repo.BulkCreate(t.Context(), list))
	return list
}

func TestNotificationRepository_BulkCreateAndList(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()

	seedNotifications(t, repo, "usr_a", 3)
	seedNotifications(t, repo, "usr_b", 1)

	list, err := repo.ListByRecipient(ctx, "usr_a", false, 50)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	limited, err := repo.ListByRecipient(ctx, "usr_a", false, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	assert.NoError(t, repo.BulkCreate(ctx, nil))
}

func TestNotificationRepository_ReadState(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()

	items := seedNotifications(t, repo, "usr_a", 3)

	count, err := repo.CountUnread(ctx, "usr_a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, repo.MarkRead(ctx, items[0].ID(), "usr_a"))
	// Marking again is idempotent.
	require.NoError(t, repo.MarkRead(ctx, items[0].ID(), "usr_a"))

	// Another recipient's notification is left untouched without an error.
	require.NoError(t, repo.MarkRead(ctx, items[1].ID(), "usr_other"))
	require.NoError(t, repo.MarkRead(ctx, "ntf_missing", "usr_a"))

	unread, err := repo.ListByRecipient(ctx, "usr_a", true, 50)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	updated, err := repo.MarkAllRead(ctx, "usr_a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err = repo.CountUnread(ctx, "usr_a")
	require.NoError(t, err)
	assert.Zero(t, count)
}
