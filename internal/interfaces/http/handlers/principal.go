package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// requirePrincipal writes a 401 and returns false when the auth middleware
// did not resolve a caller.
func requirePrincipal(c *gin.Context) (*authorization.Principal, bool) {
	p := authorization.GetPrincipal(c)
	if p == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgNotAuthenticated))
		return nil, false
	}
	return p, true
}

// bindJSON decodes the body and validates it against its binding tags,
// writing a 400 on failure. Field errors are reported by JSON name.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
