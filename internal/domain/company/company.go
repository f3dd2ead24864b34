// Package company models the tenant root: a subscribing organisation that
// owns one brand and its members.
package company

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/id"
)

const maxNameLength = 200

type Company struct {
	id                 string
	name               string
	subscriptionStatus SubscriptionStatus
	billingCustomerID  string
	subscriptionID     string
	subscriptionEndsAt *time.Time
	createdAt          time.Time
	updatedAt          time.Time
	mu                 sync.RWMutex
}

// NewCompany creates an UNPAID company.
func NewCompany(name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("company name exceeds maximum length of %d characters", maxNameLength)
	}

	now := time.Now().UTC()
	return &Company{
		id:                 id.NewCompanyID(),
		name:               name,
		subscriptionStatus: SubscriptionStatusUnpaid,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructCompany rebuilds a company from persistence.
func ReconstructCompany(
	companyID string,
	name string,
	status SubscriptionStatus,
	billingCustomerID string,
	subscriptionID string,
	subscriptionEndsAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Company{
		id:                 companyID,
		name:               name,
		subscriptionStatus: status,
		billingCustomerID:  billingCustomerID,
		subscriptionID:     subscriptionID,
		subscriptionEndsAt: subscriptionEndsAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (c *Company) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

func (c *Company) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

func (c *Company) SubscriptionStatus() SubscriptionStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptionStatus
}

func (c *Company) BillingCustomerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.billingCustomerID
}

func (c *Company) SubscriptionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptionID
}

func (c *Company) SubscriptionEndsAt() *time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptionEndsAt
}

func (c *Company) CreatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

func (c *Company) HasBillingCustomer() bool {
	return c.BillingCustomerID() != ""
}

// AttachBillingCustomer records the provider customer handle. It is set once.
func (c *Company) AttachBillingCustomer(customerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if customerID == "" {
		return fmt.Errorf("billing customer ID is required")
	}
	if c.billingCustomerID != "" && c.billingCustomerID != customerID {
		return fmt.Errorf("company already has billing customer %s", c.billingCustomerID)
	}
	c.billingCustomerID = customerID
	c.updatedAt = time.Now().UTC()
	return nil
}

// ApplySubscription records state reported by the billing provider.
func (c *Company) ApplySubscription(status SubscriptionStatus, subscriptionID string, endsAt *time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !status.IsValid() {
		return fmt.Errorf("invalid subscription status: %s", status)
	}
	c.subscriptionStatus = status
	if subscriptionID != "" {
		c.subscriptionID = subscriptionID
	}
	c.subscriptionEndsAt = endsAt
	c.updatedAt = time.Now().UTC()
	return nil
}
