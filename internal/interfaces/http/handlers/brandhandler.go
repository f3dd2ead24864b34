package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/application/brand/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type BrandHandler struct {
	getOwnUC      getOwnBrandUseCase
	updateOwnUC   updateOwnBrandUseCase
	detailUC      getBrandDetailUseCase
	searchUC      searchBrandsUseCase
	browseUC      browseBrandsUseCase
	quickCreateUC quickCreateBrandUseCase
	logger        logger.Interface
}

func NewBrandHandler(
	getOwnUC getOwnBrandUseCase,
	updateOwnUC updateOwnBrandUseCase,
	detailUC getBrandDetailUseCase,
	searchUC searchBrandsUseCase,
	browseUC browseBrandsUseCase,
	quickCreateUC quickCreateBrandUseCase,
	logger logger.Interface,
) *BrandHandler {
	return &BrandHandler{
		getOwnUC:      getOwnUC,
		updateOwnUC:   updateOwnUC,
		detailUC:      detailUC,
		searchUC:      searchUC,
		browseUC:      browseUC,
		quickCreateUC: quickCreateUC,
		logger:        logger,
	}
}

// GetOwn handles GET /brand
func (h *BrandHandler) GetOwn(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.getOwnUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateOwn handles PUT /brand
func (h *BrandHandler) UpdateOwn(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateOwnUC.Execute(c.Request.Context(), p, usecases.UpdateOwnBrandCommand{
		Name:        req.Name,
		About:       req.About,
		Website:     req.Website,
		ContactInfo: req.ContactInfo,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Brand updated successfully", result)
}

// GetDetail handles GET /brands/:id
func (h *BrandHandler) GetDetail(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	brandID, err := utils.ParseSIDParam(c, "id", id.PrefixBrand, "brand")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.detailUC.Execute(c.Request.Context(), p, brandID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Search handles GET /search?q=
func (h *BrandHandler) Search(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.searchUC.Execute(c.Request.Context(), p, c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Browse handles GET /brands/browse. Anonymous callers get limited views.
func (h *BrandHandler) Browse(c *gin.Context) {
	result, err := h.browseUC.Execute(c.Request.Context(), authorization.GetPrincipal(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// QuickCreate handles POST /brands/quick-create
func (h *BrandHandler) QuickCreate(c *gin.Context) {
	var req dto.QuickCreateBrandRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.quickCreateUC.Execute(c.Request.Context(), usecases.QuickCreateBrandCommand{
		BrandName:   req.BrandName,
		CompanyName: req.CompanyName,
		About:       req.About,
		Website:     req.Website,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Brand created successfully")
}
