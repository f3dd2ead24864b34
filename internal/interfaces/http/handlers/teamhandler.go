package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/application/team/dto"
	"github.com/brandvault/brandvault/internal/application/team/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type listMembersUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.TeamResponse, error)
}

type addMemberUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, cmd usecases.AddMemberCommand) (*authdto.UserResponse, error)
}

type removeMemberUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, userID string) error
}

type TeamHandler struct {
	listUC   listMembersUseCase
	addUC    addMemberUseCase
	removeUC removeMemberUseCase
	logger   logger.Interface
}

func NewTeamHandler(listUC listMembersUseCase, addUC addMemberUseCase, removeUC removeMemberUseCase, logger logger.Interface) *TeamHandler {
	return &TeamHandler{
		listUC:   listUC,
		addUC:    addUC,
		removeUC: removeUC,
		logger:   logger,
	}
}

// List handles GET /team
func (h *TeamHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Add handles POST /team
func (h *TeamHandler) Add(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), p, usecases.AddMemberCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Team member added")
}

// Remove handles DELETE /team/:id
func (h *TeamHandler) Remove(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	userID, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), p, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
