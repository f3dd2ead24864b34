package company

import "context"

type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByBillingCustomerID(ctx context.Context, customerID string) (*Company, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
}
