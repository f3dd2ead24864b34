package user

import (
	"fmt"
	"regexp"
	"strings"
)

type Role string

const (
	RoleMaster Role = "MASTER"
	RoleUser   Role = "USER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleMaster || r == RoleUser
}

func (r Role) IsMaster() bool {
	return r == RoleMaster
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an address and checks its shape.
func NormalizeEmail(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return "", fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return "", fmt.Errorf("invalid email format: %s", value)
	}
	return normalized, nil
}
