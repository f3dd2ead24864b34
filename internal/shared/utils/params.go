package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
)

// ParseSIDParam reads a prefixed identifier from the route, rejecting
// malformed values before they reach storage.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if !id.HasPrefix(sid, prefix) {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}
	return sid, nil
}
