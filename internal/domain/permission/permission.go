// Package permission names the role-gated actions of the product.
package permission

// Resource is an object guarded by role policy.
type Resource string

// Action is what a role may do to a Resource.
type Action string

const (
	ResourceTeam Resource = "team"
	ResourceNote Resource = "note"
)

const (
	ActionRead     Action = "read"
	ActionManage   Action = "manage"
	ActionModerate Action = "moderate"
)

// Enforcer answers whether a role holds an action on a resource.
type Enforcer interface {
	Enforce(role string, resource Resource, action Action) (bool, error)
}

// Rule is one seeded grant.
type Rule struct {
	Role     string
	Resource Resource
	Action   Action
}
