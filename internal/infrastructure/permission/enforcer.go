// Package permission backs role policy with casbin.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

var _ permission.Enforcer = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer persists policy in the casbin_rule table and adds any seed rule
// that is not stored yet. Rules added by operators are left alone.
func NewEnforcer(db *gorm.DB, seed []permission.Rule, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := newModel()
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(seed); err != nil {
		return nil, err
	}
	return e, nil
}

// NewMemoryEnforcer keeps policy in memory only.
func NewMemoryEnforcer(seed []permission.Rule, log logger.Interface) (*Enforcer, error) {
	m, err := newModel()
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(seed); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seed(rules []permission.Rule) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, rule := range rules {
		ok, err := e.enforcer.HasPolicy(rule.Role, string(rule.Resource), string(rule.Action))
		if err != nil {
			return fmt.Errorf("failed to check policy: %w", err)
		}
		if ok {
			continue
		}
		if _, err := e.enforcer.AddPolicy(rule.Role, string(rule.Resource), string(rule.Action)); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", rule.Role,
				"resource", rule.Resource,
				"action", rule.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", rule.Role, rule.Resource, rule.Action, err)
		}
		added++
	}

	if added > 0 {
		e.logger.Infow("permission policies seeded", "added", added)
	}
	return nil
}

func (e *Enforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, string(resource), string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
