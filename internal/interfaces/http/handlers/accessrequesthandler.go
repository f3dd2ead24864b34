package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/accessrequest/dto"
	"github.com/brandvault/brandvault/internal/application/accessrequest/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type createAccessRequestUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, cmd usecases.CreateAccessRequestCommand) (*dto.AccessRequestResponse, error)
}

type updateAccessRequestStatusUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, requestID, status string) (*dto.AccessRequestResponse, error)
}

type listAccessRequestsUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, listType dto.ListType) (*dto.ListAccessRequestsResponse, error)
}

type AccessRequestHandler struct {
	createUC createAccessRequestUseCase
	updateUC updateAccessRequestStatusUseCase
	listUC   listAccessRequestsUseCase
	logger   logger.Interface
}

func NewAccessRequestHandler(
	createUC createAccessRequestUseCase,
	updateUC updateAccessRequestStatusUseCase,
	listUC listAccessRequestsUseCase,
	logger logger.Interface,
) *AccessRequestHandler {
	return &AccessRequestHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /access-requests
func (h *AccessRequestHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateAccessRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), p, usecases.CreateAccessRequestCommand{
		BrandID:    req.BrandID,
		AccessType: req.AccessType,
		Message:    req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Access request sent")
}

// UpdateStatus handles PATCH /access-requests/:id
func (h *AccessRequestHandler) UpdateStatus(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	requestID, err := utils.ParseSIDParam(c, "id", id.PrefixAccessRequest, "access request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAccessRequestStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), p, requestID, req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Access request updated", result)
}

// List handles GET /access-requests?type=sent|received. The default is received.
func (h *AccessRequestHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	listType := dto.ListType(c.DefaultQuery("type", string(dto.ListTypeReceived)))
	result, err := h.listUC.Execute(c.Request.Context(), p, listType)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
