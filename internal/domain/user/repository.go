package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]*User, error)
	ListIDsByCompanyIDs(ctx context.Context, companyIDs []string) ([]string, error)
	Delete(ctx context.Context, id string) error
}
