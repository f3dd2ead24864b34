package dto

import (
	"time"

	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/user"
)

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	CompanyName string `json:"companyName" binding:"required,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CompanyID   string    `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CompanySummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	SubscriptionStatus string `json:"subscriptionStatus"`
}

type MeResponse struct {
	User    *UserResponse   `json:"user"`
	Company *CompanySummary `json:"company"`
	BrandID *string         `json:"brandId"`
}

// SessionResult is a signed-in user with the token that goes into the cookie.
type SessionResult struct {
	User      *UserResponse
	Token     string
	ExpiresAt time.Time
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CompanyID:   u.CompanyID(),
		CreatedAt:   u.CreatedAt(),
	}
}

func ToCompanySummary(c *company.Company) *CompanySummary {
	if c == nil {
		return nil
	}
	return &CompanySummary{
		ID:                 c.ID(),
		Name:               c.Name(),
		SubscriptionStatus: c.SubscriptionStatus().String(),
	}
}
