// Package user models company members and the team-management rules that
// govern them.
package user

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/brandvault/brandvault/internal/shared/id"
)

const maxNamePartLength = 100

type User struct {
	id           string
	companyID    string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
	mu           sync.RWMutex
}

// NewUser builds a member. passwordHash must already be hashed.
func NewUser(companyID, email, passwordHash, firstName, lastName string, role Role) (*User, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if len(firstName) > maxNamePartLength || len(lastName) > maxNamePartLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNamePartLength)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		id:           id.NewUserID(),
		companyID:    companyID,
		email:        normalized,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	userID, companyID, email, passwordHash, firstName, lastName string,
	role Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           userID,
		companyID:    companyID,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.id
}

func (u *User) CompanyID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.companyID
}

func (u *User) Email() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.email
}

func (u *User) PasswordHash() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.passwordHash
}

func (u *User) FirstName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.firstName
}

func (u *User) LastName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.lastName
}

func (u *User) Role() Role {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.role
}

func (u *User) CreatedAt() time.Time {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.updatedAt
}

func (u *User) IsMaster() bool {
	return u.Role().IsMaster()
}

// DisplayName renders "First Last" in title case, e.g. "ada LOVELACE" -> "Ada Lovelace".
func (u *User) DisplayName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return cases.Title(language.Und).String(u.firstName + " " + u.lastName)
}
