package accessrequest

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusDenied   Status = "DENIED"
)

var validStatuses = map[Status]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusDenied:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal reports whether the request can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

func (s Status) GrantsAccess() bool {
	return s == StatusApproved
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid access request status: %s", s)
	}
	return status, nil
}

// AccessType is the breadth of access requested. New types may be added
// without touching the state machine.
type AccessType string

const (
	AccessTypeFull    AccessType = "FULL"
	AccessTypeLimited AccessType = "LIMITED"
)

var validAccessTypes = map[AccessType]bool{
	AccessTypeFull:    true,
	AccessTypeLimited: true,
}

func (t AccessType) String() string {
	return string(t)
}

func (t AccessType) IsValid() bool {
	return validAccessTypes[t]
}

// ParseAccessType defaults an empty value to FULL.
func ParseAccessType(s string) (AccessType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return AccessTypeFull, nil
	}
	t := AccessType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid access type: %s", s)
	}
	return t, nil
}
