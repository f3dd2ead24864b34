package notification

import "context"

type Repository interface {
	BulkCreate(ctx context.Context, notifications []*Notification) error
	// ListByRecipient returns newest first.
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	// MarkRead flips the flag only when the notification belongs to recipientID.
	// Anything else, including an unknown id, is a silent no-op.
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
