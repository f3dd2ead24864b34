package dto

import (
	"time"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
)

type CreateAccessRequestRequest struct {
	BrandID    string `json:"brandId" binding:"required"`
	AccessType string `json:"accessType" binding:"omitempty,oneof=FULL LIMITED"`
	Message    string `json:"message" binding:"max=1000"`
}

type UpdateAccessRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED DENIED"`
}

// ListType selects which side of the relationship a listing shows.
type ListType string

const (
	ListTypeSent     ListType = "sent"
	ListTypeReceived ListType = "received"
)

func (t ListType) IsValid() bool {
	return t == ListTypeSent || t == ListTypeReceived
}

type AccessRequestResponse struct {
	ID                   string     `json:"id"`
	RequesterCompanyID   string     `json:"requesterCompanyId"`
	TargetBrandID        string     `json:"targetBrandId"`
	Status               string     `json:"status"`
	AccessType           string     `json:"accessType"`
	Message              string     `json:"message,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	ApprovedAt           *time.Time `json:"approvedAt"`
	BrandName            string     `json:"brandName,omitempty"`
	RequesterCompanyName string     `json:"requesterCompanyName,omitempty"`
}

type ListAccessRequestsResponse struct {
	Type     ListType                 `json:"type"`
	Requests []*AccessRequestResponse `json:"requests"`
}

func ToAccessRequestResponse(r *accessrequest.AccessRequest) *AccessRequestResponse {
	if r == nil {
		return nil
	}
	return &AccessRequestResponse{
		ID:                 r.ID(),
		RequesterCompanyID: r.RequesterCompanyID(),
		TargetBrandID:      r.TargetBrandID(),
		Status:             r.Status().String(),
		AccessType:         r.AccessType().String(),
		Message:            r.Message(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
		ApprovedAt:         r.ApprovedAt(),
	}
}
