package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/note/dto"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type listNotesUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, brandID string) ([]*dto.NoteResponse, error)
}

type createNoteUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, brandID, content string) (*dto.NoteResponse, error)
}

type deleteNoteUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, noteID string) error
}

type NoteHandler struct {
	listUC   listNotesUseCase
	createUC createNoteUseCase
	deleteUC deleteNoteUseCase
	logger   logger.Interface
}

func NewNoteHandler(listUC listNotesUseCase, createUC createNoteUseCase, deleteUC deleteNoteUseCase, logger logger.Interface) *NoteHandler {
	return &NoteHandler{
		listUC:   listUC,
		createUC: createUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List handles GET /notes?brandId=
func (h *NoteHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	brandID := c.Query("brandId")
	if brandID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Brand ID is required"))
		return
	}

	notes, err := h.listUC.Execute(c.Request.Context(), p, brandID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"notes": notes})
}

// Create handles POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), p, req.BrandID, req.Content)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Note added")
}

// Delete handles DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	noteID, err := utils.ParseSIDParam(c, "id", id.PrefixNote, "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), p, noteID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
