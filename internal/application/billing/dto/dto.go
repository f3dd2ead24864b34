package dto

import (
	"time"

	authdto "github.com/brandvault/brandvault/internal/application/auth/dto"
)

type CheckoutRequest struct {
	AdditionalUsers int64 `json:"additionalUsers" binding:"min=0,max=1000"`
}

type BillingStatusResponse struct {
	CompanyID          string                  `json:"companyId"`
	SubscriptionStatus string                  `json:"subscriptionStatus"`
	SubscriptionID     string                  `json:"subscriptionId,omitempty"`
	SubscriptionEndsAt *time.Time              `json:"subscriptionEndsAt"`
	HasBillingCustomer bool                    `json:"hasBillingCustomer"`
	ProviderStatus     string                  `json:"providerStatus,omitempty"`
	Members            []*authdto.UserResponse `json:"members"`
	SeatCount          int                     `json:"seatCount"`
}

type SessionURLResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
	Handled  bool `json:"handled"`
}
