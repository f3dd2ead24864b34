package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/billing/dto"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

const maxWebhookPayload = 1 << 20

type billingStatusUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.BillingStatusResponse, error)
}

type checkoutSessionUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, additionalUsers int64) (*dto.SessionURLResponse, error)
}

type portalSessionUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.SessionURLResponse, error)
}

type webhookUseCase interface {
	Execute(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, error)
}

type BillingHandler struct {
	statusUC   billingStatusUseCase
	checkoutUC checkoutSessionUseCase
	portalUC   portalSessionUseCase
	webhookUC  webhookUseCase
	logger     logger.Interface
}

func NewBillingHandler(
	statusUC billingStatusUseCase,
	checkoutUC checkoutSessionUseCase,
	portalUC portalSessionUseCase,
	webhookUC webhookUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		statusUC:   statusUC,
		checkoutUC: checkoutUC,
		portalUC:   portalUC,
		webhookUC:  webhookUC,
		logger:     logger,
	}
}

// Status handles GET /billing
func (h *BillingHandler) Status(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Checkout handles POST /billing/checkout. An empty body buys no extra seats.
func (h *BillingHandler) Checkout(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), p, req.AdditionalUsers)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Portal handles POST /billing/portal
func (h *BillingHandler) Portal(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.portalUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Webhook handles POST /webhooks/stripe. The raw body is needed for
// signature verification.
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayload))
	if err != nil {
		h.logger.Warnw("failed to read webhook payload", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Unreadable webhook payload"))
		return
	}

	result, err := h.webhookUC.Execute(c.Request.Context(), payload, c.GetHeader(constants.HeaderStripeSig))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
