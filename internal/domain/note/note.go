// Package note holds private annotations a company keeps about other brands.
// A note is visible only inside the company that wrote it.
package note

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
)

const maxContentLength = 5000

type Note struct {
	id        string
	brandID   string
	companyID string
	authorID  string
	content   string
	createdAt time.Time
	mu        sync.RWMutex
}

func NewNote(brandID, companyID, authorID, content string) (*Note, error) {
	if brandID == "" || companyID == "" || authorID == "" {
		return nil, fmt.Errorf("brand, company and author are required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.NewValidationError("Note content is required")
	}
	if len(content) > maxContentLength {
		return nil, errors.NewValidationError(fmt.Sprintf("Note exceeds maximum length of %d characters", maxContentLength))
	}

	return &Note{
		id:        id.NewNoteID(),
		brandID:   brandID,
		companyID: companyID,
		authorID:  authorID,
		content:   content,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructNote(noteID, brandID, companyID, authorID, content string, createdAt time.Time) (*Note, error) {
	if noteID == "" {
		return nil, fmt.Errorf("note ID is required")
	}
	return &Note{
		id:        noteID,
		brandID:   brandID,
		companyID: companyID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

// EnsureCanDelete lets the author or a moderator of the same company delete.
// Notes of other companies are reported as missing.
func (n *Note) EnsureCanDelete(actorUserID, actorCompanyID string, canModerate bool) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.companyID != actorCompanyID {
		return errors.NewNotFoundError("Note not found")
	}
	if n.authorID == actorUserID || canModerate {
		return nil
	}
	return errors.NewForbiddenError("Only the author or a master user can delete this note")
}

func (n *Note) ID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Note) BrandID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.brandID
}

func (n *Note) CompanyID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.companyID
}

func (n *Note) AuthorID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.authorID
}

func (n *Note) Content() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

func (n *Note) CreatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.createdAt
}

type Repository interface {
	Create(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, id string) (*Note, error)
	// ListByCompanyAndBrand returns newest first. An empty brandID lists all of the company's notes.
	ListByCompanyAndBrand(ctx context.Context, companyID, brandID string) ([]*Note, error)
	Delete(ctx context.Context, id string) error
}
