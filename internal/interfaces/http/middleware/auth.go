package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/auth"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// TokenVerifier decodes a session token into its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserLoader returns nil, nil for a user that no longer exists.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type AuthMiddleware struct {
	verifier   TokenVerifier
	users      UserLoader
	cookieName string
	logger     logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, users UserLoader, cookieName string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   verifier,
		users:      users,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewNotAuthenticatedError())
			c.Abort()
			return
		}

		p, err := m.resolve(c.Request.Context(), token)
		if err != nil {
			m.logger.Warnw("rejected session", "path", c.Request.URL.Path, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid session is present and
// otherwise lets the request through as anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.extractToken(c); token != "" {
			if p, err := m.resolve(c.Request.Context(), token); err == nil {
				authorization.SetPrincipal(c, p)
			}
		}
		c.Next()
	}
}

// resolve verifies the token and rebuilds the principal from the stored user,
// so removed members and role changes take effect before the token expires.
func (m *AuthMiddleware) resolve(ctx context.Context, token string) (*authorization.Principal, error) {
	claims, err := m.verifier.Verify(token)
	if err != nil {
		return nil, errors.NewSessionInvalidError()
	}

	u, err := m.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.WrapDependency(err)
	}
	if u == nil {
		return nil, errors.NewSessionInvalidError("User no longer exists")
	}

	return &authorization.Principal{
		UserID:    u.ID(),
		CompanyID: u.CompanyID(),
		Role:      u.Role().String(),
		Email:     u.Email(),
	}, nil
}

// extractToken prefers the session cookie and falls back to a Bearer header.
func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetSessionToken(c, m.cookieName); token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader(constants.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
