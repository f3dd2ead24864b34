package accessrequest

import "context"

type Repository interface {
	// Create fails with a ConflictError when the (requester, target) pair exists.
	Create(ctx context.Context, request *AccessRequest) error
	GetByID(ctx context.Context, id string) (*AccessRequest, error)
	FindByPair(ctx context.Context, requesterCompanyID, targetBrandID string) (*AccessRequest, error)
	// ListByRequesterForTargets keys the requester's requests by target brand id.
	ListByRequesterForTargets(ctx context.Context, requesterCompanyID string, targetBrandIDs []string) (map[string]*AccessRequest, error)
	ListByRequester(ctx context.Context, requesterCompanyID string) ([]*AccessRequest, error)
	ListByTargetBrand(ctx context.Context, targetBrandID string) ([]*AccessRequest, error)
	ListApprovedRequesterCompanyIDs(ctx context.Context, targetBrandID string) ([]string, error)
	// SaveTransition persists a status change only if the stored status still
	// equals from; otherwise it returns a ConflictError.
	SaveTransition(ctx context.Context, request *AccessRequest, from Status) error
}
