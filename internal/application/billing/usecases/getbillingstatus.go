package usecases

import (
	"context"

	authdto "github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/application/billing/dto"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type GetBillingStatusUseCase struct {
	companies company.Repository
	users     user.Repository
	gateway   Gateway
	logger    logger.Interface
}

func NewGetBillingStatusUseCase(
	companies company.Repository,
	users user.Repository,
	gateway Gateway,
	logger logger.Interface,
) *GetBillingStatusUseCase {
	return &GetBillingStatusUseCase{
		companies: companies,
		users:     users,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute reports the stored subscription state. The provider is asked for
// its live status when a subscription exists; a failure there is only logged.
func (uc *GetBillingStatusUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.BillingStatusResponse, error) {
	c, err := loadCompany(ctx, uc.companies, p.CompanyID, uc.logger)
	if err != nil {
		return nil, err
	}

	members, err := uc.users.ListByCompanyID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list company members", "company_id", c.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	memberResponses := mapper.MapSlicePtrSkipNil(members, authdto.ToUserResponse)
	if memberResponses == nil {
		memberResponses = []*authdto.UserResponse{}
	}

	resp := &dto.BillingStatusResponse{
		CompanyID:          c.ID(),
		SubscriptionStatus: c.SubscriptionStatus().String(),
		SubscriptionID:     c.SubscriptionID(),
		SubscriptionEndsAt: c.SubscriptionEndsAt(),
		HasBillingCustomer: c.HasBillingCustomer(),
		Members:            memberResponses,
		SeatCount:          len(memberResponses),
	}

	if c.SubscriptionID() != "" {
		sub, err := uc.gateway.GetSubscription(ctx, c.SubscriptionID())
		if err != nil {
			uc.logger.Warnw("failed to fetch live subscription", "company_id", c.ID(), "error", err)
		} else {
			resp.ProviderStatus = sub.Status
		}
	}
	return resp, nil
}
