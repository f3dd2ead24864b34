package brand

import "context"

type Repository interface {
	Create(ctx context.Context, brand *Brand) error
	GetByID(ctx context.Context, id string) (*Brand, error)
	GetByCompanyID(ctx context.Context, companyID string) (*Brand, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Brand, error)
	Update(ctx context.Context, brand *Brand) error
	// SearchByName matches name case-insensitively, skipping excludeCompanyID's brand.
	SearchByName(ctx context.Context, query, excludeCompanyID string, limit int) ([]*Brand, error)
	ListRecent(ctx context.Context, limit int) ([]*Brand, error)
}
