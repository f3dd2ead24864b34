package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/accessrequest/dto"
	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/entitlement"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type CreateAccessRequestCommand struct {
	BrandID    string
	AccessType string
	Message    string
}

// CreateAccessRequestResult carries the stored request and the notifications
// to send once it is committed.
type CreateAccessRequestResult struct {
	Request *accessrequest.AccessRequest
	Intents []notification.Intent
}

type CreateAccessRequestUseCase struct {
	companies  company.Repository
	brands     brand.Repository
	requests   accessrequest.Repository
	dispatcher IntentDispatcher
	metrics    MetricsRecorder
	logger     logger.Interface
}

func NewCreateAccessRequestUseCase(
	companies company.Repository,
	brands brand.Repository,
	requests accessrequest.Repository,
	dispatcher IntentDispatcher,
	metrics MetricsRecorder,
	logger logger.Interface,
) *CreateAccessRequestUseCase {
	return &CreateAccessRequestUseCase{
		companies:  companies,
		brands:     brands,
		requests:   requests,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *CreateAccessRequestUseCase) Execute(ctx context.Context, p *authorization.Principal, cmd CreateAccessRequestCommand) (*dto.AccessRequestResponse, error) {
	result, err := uc.Create(ctx, p, cmd)
	if err != nil {
		return nil, err
	}
	uc.dispatcher.Dispatch(ctx, result.Intents...)
	return dto.ToAccessRequestResponse(result.Request), nil
}

// Create stores a PENDING request without sending notifications. The storage
// uniqueness constraint on (requester, brand) decides concurrent duplicates.
func (uc *CreateAccessRequestUseCase) Create(ctx context.Context, p *authorization.Principal, cmd CreateAccessRequestCommand) (*CreateAccessRequestResult, error) {
	requester, err := uc.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load requester company", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if err := entitlement.EnsureCanWrite(requester, entitlement.OperationAccessRequestCreate); err != nil {
		return nil, err
	}

	accessType, err := accessrequest.ParseAccessType(cmd.AccessType)
	if err != nil {
		return nil, errors.NewValidationError("Invalid access type", cmd.AccessType)
	}

	target, err := uc.brands.GetByID(ctx, cmd.BrandID)
	if err != nil {
		uc.logger.Errorw("failed to load target brand", "brand_id", cmd.BrandID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if target == nil {
		return nil, errors.NewValidationError("Brand not found", cmd.BrandID)
	}

	req, err := accessrequest.NewAccessRequest(p.CompanyID, target.ID(), target.CompanyID(), accessType, cmd.Message)
	if err != nil {
		return nil, err
	}

	if err := uc.requests.Create(ctx, req); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create access request", "brand_id", target.ID(), "error", err)
		}
		return nil, errors.WrapDependency(err)
	}

	uc.metrics.AccessRequestTransition(req.Status().String())
	uc.logger.Infow("access request created",
		"request_id", req.ID(),
		"requester_company_id", p.CompanyID,
		"brand_id", target.ID(),
	)

	return &CreateAccessRequestResult{
		Request: req,
		Intents: []notification.Intent{
			notification.AccessRequested(target.CompanyID(), requester.Name(), target.Name()),
		},
	}, nil
}
