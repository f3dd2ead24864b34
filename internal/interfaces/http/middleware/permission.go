package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// PermissionMiddleware gates routes on the caller's role policy. It must run
// after RequireAuth.
type PermissionMiddleware struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := authorization.GetPrincipal(c)
		if p == nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgNotAuthenticated))
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(p.Role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"user_id", p.UserID,
				"resource", resource,
				"action", action,
				"error", err,
			)
			utils.ErrorResponseWithError(c, errors.NewDependencyError(err))
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied", "user_id", p.UserID, "role", p.Role, "resource", resource, "action", action)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(constants.ErrMsgForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}
