// Package accessrequest holds the cross-tenant access grant and its
// PENDING -> APPROVED | DENIED lifecycle.
package accessrequest

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
)

const maxMessageLength = 2000

type AccessRequest struct {
	id                 string
	requesterCompanyID string
	targetBrandID      string
	status             Status
	accessType         AccessType
	message            string
	createdAt          time.Time
	updatedAt          time.Time
	approvedAt         *time.Time
	mu                 sync.RWMutex
}

// NewAccessRequest opens a PENDING request. targetCompanyID is the owner of
// the target brand and must differ from the requester.
func NewAccessRequest(requesterCompanyID, targetBrandID, targetCompanyID string, accessType AccessType, message string) (*AccessRequest, error) {
	if requesterCompanyID == "" {
		return nil, errors.NewValidationError("Requester company is required")
	}
	if targetBrandID == "" {
		return nil, errors.NewValidationError("Brand ID is required")
	}
	if requesterCompanyID == targetCompanyID {
		return nil, errors.NewValidationError("Cannot request access to your own brand")
	}
	if !accessType.IsValid() {
		return nil, errors.NewValidationError("Invalid access type", accessType.String())
	}
	message = strings.TrimSpace(message)
	if len(message) > maxMessageLength {
		return nil, errors.NewValidationError(fmt.Sprintf("Message exceeds maximum length of %d characters", maxMessageLength))
	}

	now := time.Now().UTC()
	return &AccessRequest{
		id:                 id.NewAccessRequestID(),
		requesterCompanyID: requesterCompanyID,
		targetBrandID:      targetBrandID,
		status:             StatusPending,
		accessType:         accessType,
		message:            message,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructAccessRequest(
	requestID, requesterCompanyID, targetBrandID string,
	status Status,
	accessType AccessType,
	message string,
	createdAt, updatedAt time.Time,
	approvedAt *time.Time,
) (*AccessRequest, error) {
	if requestID == "" {
		return nil, fmt.Errorf("access request ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid access request status: %s", status)
	}

	return &AccessRequest{
		id:                 requestID,
		requesterCompanyID: requesterCompanyID,
		targetBrandID:      targetBrandID,
		status:             status,
		accessType:         accessType,
		message:            message,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		approvedAt:         approvedAt,
	}, nil
}

// EnsureCanDecide allows only the target brand's owner to approve or deny.
func EnsureCanDecide(actingCompanyID, targetBrandCompanyID string) error {
	if actingCompanyID == "" || actingCompanyID != targetBrandCompanyID {
		return errors.NewForbiddenError("Not authorized to update this access request")
	}
	return nil
}

// Transition moves a PENDING request to APPROVED or DENIED. approvedAt is
// stamped only on approval. Terminal requests never move again.
func (r *AccessRequest) Transition(to Status, now time.Time) error {
	if to != StatusApproved && to != StatusDenied {
		return errors.NewValidationError("Status must be APPROVED or DENIED", to.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.IsTerminal() {
		return errors.NewConflictError(
			"Access request has already been decided",
			fmt.Sprintf("current status %s", r.status),
		)
	}

	r.status = to
	r.updatedAt = now.UTC()
	if to == StatusApproved {
		at := now.UTC()
		r.approvedAt = &at
	}
	return nil
}

func (r *AccessRequest) ID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

func (r *AccessRequest) RequesterCompanyID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.requesterCompanyID
}

func (r *AccessRequest) TargetBrandID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.targetBrandID
}

func (r *AccessRequest) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *AccessRequest) AccessType() AccessType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accessType
}

func (r *AccessRequest) Message() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.message
}

func (r *AccessRequest) CreatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.createdAt
}

func (r *AccessRequest) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updatedAt
}

func (r *AccessRequest) ApprovedAt() *time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.approvedAt
}
