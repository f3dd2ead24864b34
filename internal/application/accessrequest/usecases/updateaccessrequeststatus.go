package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/accessrequest/dto"
	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/biztime"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type UpdateAccessRequestStatusResult struct {
	Request *accessrequest.AccessRequest
	Intents []notification.Intent
}

// UpdateAccessRequestStatusUseCase approves or denies a PENDING request. It is
// not gated by the subscription so a lapsed target can still answer.
type UpdateAccessRequestStatusUseCase struct {
	brands     brand.Repository
	requests   accessrequest.Repository
	dispatcher IntentDispatcher
	metrics    MetricsRecorder
	clock      biztime.Clock
	logger     logger.Interface
}

func NewUpdateAccessRequestStatusUseCase(
	brands brand.Repository,
	requests accessrequest.Repository,
	dispatcher IntentDispatcher,
	metrics MetricsRecorder,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateAccessRequestStatusUseCase {
	return &UpdateAccessRequestStatusUseCase{
		brands:     brands,
		requests:   requests,
		dispatcher: dispatcher,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *UpdateAccessRequestStatusUseCase) Execute(ctx context.Context, p *authorization.Principal, requestID, status string) (*dto.AccessRequestResponse, error) {
	result, err := uc.Update(ctx, p, requestID, status)
	if err != nil {
		return nil, err
	}
	uc.dispatcher.Dispatch(ctx, result.Intents...)
	return dto.ToAccessRequestResponse(result.Request), nil
}

// Update persists the transition only if the stored status is still the one
// it was read with, so two concurrent decisions cannot both succeed.
func (uc *UpdateAccessRequestStatusUseCase) Update(ctx context.Context, p *authorization.Principal, requestID, status string) (*UpdateAccessRequestStatusResult, error) {
	to, err := accessrequest.ParseStatus(status)
	if err != nil {
		return nil, errors.NewValidationError("Status must be APPROVED or DENIED", status)
	}

	req, err := uc.requests.GetByID(ctx, requestID)
	if err != nil {
		uc.logger.Errorw("failed to load access request", "request_id", requestID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if req == nil {
		return nil, errors.NewNotFoundError("Access request not found")
	}

	target, err := uc.brands.GetByID(ctx, req.TargetBrandID())
	if err != nil {
		uc.logger.Errorw("failed to load target brand", "brand_id", req.TargetBrandID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("Access request not found")
	}
	if err := accessrequest.EnsureCanDecide(p.CompanyID, target.CompanyID()); err != nil {
		return nil, err
	}

	from := req.Status()
	if err := req.Transition(to, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.requests.SaveTransition(ctx, req, from); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to save access request transition", "request_id", req.ID(), "error", err)
		}
		return nil, errors.WrapDependency(err)
	}

	uc.metrics.AccessRequestTransition(to.String())
	uc.logger.Infow("access request decided",
		"request_id", req.ID(),
		"status", to,
		"user_id", p.UserID,
	)

	intent := notification.AccessDenied(req.RequesterCompanyID(), target.Name())
	if to == accessrequest.StatusApproved {
		intent = notification.AccessApproved(req.RequesterCompanyID(), target.Name())
	}
	return &UpdateAccessRequestStatusResult{
		Request: req,
		Intents: []notification.Intent{intent},
	}, nil
}
