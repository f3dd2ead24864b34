package company

import "fmt"

// SubscriptionStatus mirrors the billing provider's view of a company's plan.
type SubscriptionStatus string

const (
	SubscriptionStatusUnpaid    SubscriptionStatus = "UNPAID"
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

var validSubscriptionStatuses = map[SubscriptionStatus]bool{
	SubscriptionStatusUnpaid:    true,
	SubscriptionStatusActive:    true,
	SubscriptionStatusPastDue:   true,
	SubscriptionStatusCancelled: true,
}

// AllSubscriptionStatuses lists every status in declaration order.
func AllSubscriptionStatuses() []SubscriptionStatus {
	return []SubscriptionStatus{
		SubscriptionStatusUnpaid,
		SubscriptionStatusActive,
		SubscriptionStatusPastDue,
		SubscriptionStatusCancelled,
	}
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return validSubscriptionStatuses[s]
}

func (s SubscriptionStatus) IsActive() bool {
	return s == SubscriptionStatusActive
}

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return status, nil
}

// StatusFromProvider maps a Stripe subscription status string. Anything
// unrecognised, including trialing and incomplete, becomes UNPAID.
func StatusFromProvider(providerStatus string) SubscriptionStatus {
	switch providerStatus {
	case "active":
		return SubscriptionStatusActive
	case "past_due":
		return SubscriptionStatusPastDue
	case "canceled":
		return SubscriptionStatusCancelled
	default:
		return SubscriptionStatusUnpaid
	}
}
