// Package notification records typed, per-user messages raised by state
// changes elsewhere in the domain.
package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/id"
)

const (
	maxTitleLength   = 200
	maxContentLength = 5000
)

type Notification struct {
	id          string
	recipientID string
	ntype       Type
	title       string
	content     string
	read        bool
	createdAt   time.Time
	mu          sync.RWMutex
}

func NewNotification(recipientID string, ntype Type, title, content string) (*Notification, error) {
	if recipientID == "" {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return &Notification{
		id:          id.NewNotificationID(),
		recipientID: recipientID,
		ntype:       ntype,
		title:       title,
		content:     content,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructNotification(notificationID, recipientID string, ntype Type, title, content string, read bool, createdAt time.Time) (*Notification, error) {
	if notificationID == "" {
		return nil, fmt.Errorf("notification ID is required")
	}
	return &Notification{
		id:          notificationID,
		recipientID: recipientID,
		ntype:       ntype,
		title:       title,
		content:     content,
		read:        read,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Notification) RecipientID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.recipientID
}

func (n *Notification) Type() Type {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.ntype
}

func (n *Notification) Title() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.title
}

func (n *Notification) Content() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

func (n *Notification) IsRead() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.createdAt
}
