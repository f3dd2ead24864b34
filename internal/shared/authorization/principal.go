// Package authorization carries the authenticated caller through a request.
package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

// Principal is the identity decoded from a verified session token.
type Principal struct {
	UserID    string
	CompanyID string
	Role      string
	Email     string
}

const RoleMaster = "MASTER"

func (p *Principal) IsMaster() bool {
	return p != nil && p.Role == RoleMaster
}

func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
}

// GetPrincipal returns the caller, or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *Principal {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*Principal)
	return p
}
