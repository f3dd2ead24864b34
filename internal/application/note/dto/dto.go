package dto

import (
	"time"

	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/user"
)

type CreateNoteRequest struct {
	BrandID string `json:"brandId" binding:"required"`
	Content string `json:"content" binding:"required,max=5000"`
}

type NoteResponse struct {
	ID         string    `json:"id"`
	BrandID    string    `json:"brandId"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToNoteResponses resolves author names from authors, keyed by user id.
// Notes by removed members keep an empty author name.
func ToNoteResponses(notes []*note.Note, authors map[string]*user.User) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, ToNoteResponse(n, authors[n.AuthorID()]))
	}
	return out
}

func ToNoteResponse(n *note.Note, author *user.User) *NoteResponse {
	resp := &NoteResponse{
		ID:        n.ID(),
		BrandID:   n.BrandID(),
		Content:   n.Content(),
		AuthorID:  n.AuthorID(),
		CreatedAt: n.CreatedAt(),
	}
	if author != nil {
		resp.AuthorName = author.DisplayName()
	}
	return resp
}
