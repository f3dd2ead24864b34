package usecases

import (
	"context"
	"time"

	"github.com/brandvault/brandvault/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs a session for a principal.
type TokenIssuer interface {
	Issue(p authorization.Principal) (string, time.Time, error)
}

// BillingCustomerCreator registers a company with the billing provider.
type BillingCustomerCreator interface {
	CreateCustomer(ctx context.Context, email, name, companyID string) (string, error)
}
