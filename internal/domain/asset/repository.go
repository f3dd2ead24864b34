package asset

import "context"

type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id string) (*Asset, error)
	// ListByBrandID returns newest first.
	ListByBrandID(ctx context.Context, brandID string) ([]*Asset, error)
	// ListByBrandIDs groups assets per brand, newest first within each group.
	ListByBrandIDs(ctx context.Context, brandIDs []string) (map[string][]*Asset, error)
	Delete(ctx context.Context, id string) error
}
