package dto

import (
	authdto "github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type AddMemberRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

type TeamResponse struct {
	Members []*authdto.UserResponse `json:"members"`
	Count   int                     `json:"count"`
}

func ToTeamResponse(members []*user.User) *TeamResponse {
	out := mapper.MapSlicePtrSkipNil(members, authdto.ToUserResponse)
	if out == nil {
		out = []*authdto.UserResponse{}
	}
	return &TeamResponse{Members: out, Count: len(out)}
}
