// Package brand models the public profile each company advertises.
package brand

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/id"
)

const (
	maxNameLength  = 200
	maxAboutLength = 10000
)

type Brand struct {
	id          string
	companyID   string
	name        string
	about       string
	website     string
	contactInfo string
	socialLinks SocialLinks
	createdAt   time.Time
	updatedAt   time.Time
	mu          sync.RWMutex
}

// Profile carries the editable fields of a brand.
type Profile struct {
	Name        string
	About       string
	Website     string
	ContactInfo string
	SocialLinks map[string]string
}

func NewBrand(companyID, name string) (*Brand, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Brand{
		id:          id.NewBrandID(),
		companyID:   companyID,
		name:        name,
		socialLinks: SocialLinks{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBrand(
	brandID, companyID, name, about, website, contactInfo string,
	socialLinks SocialLinks,
	createdAt, updatedAt time.Time,
) (*Brand, error) {
	if brandID == "" {
		return nil, fmt.Errorf("brand ID is required")
	}
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if socialLinks == nil {
		socialLinks = SocialLinks{}
	}

	return &Brand{
		id:          brandID,
		companyID:   companyID,
		name:        name,
		about:       about,
		website:     website,
		contactInfo: contactInfo,
		socialLinks: socialLinks,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("brand name is required")
	}
	if len(name) > maxNameLength {
		return "", fmt.Errorf("brand name exceeds maximum length of %d characters", maxNameLength)
	}
	return name, nil
}

// UpdateProfile replaces every editable field.
func (b *Brand) UpdateProfile(p Profile) error {
	name, err := validateName(p.Name)
	if err != nil {
		return err
	}
	if len(p.About) > maxAboutLength {
		return fmt.Errorf("about exceeds maximum length of %d characters", maxAboutLength)
	}
	links, err := NewSocialLinks(p.SocialLinks)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
	b.about = strings.TrimSpace(p.About)
	b.website = strings.TrimSpace(p.Website)
	b.contactInfo = strings.TrimSpace(p.ContactInfo)
	b.socialLinks = links
	b.updatedAt = time.Now().UTC()
	return nil
}

func (b *Brand) ID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

func (b *Brand) CompanyID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.companyID
}

func (b *Brand) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

func (b *Brand) About() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.about
}

func (b *Brand) Website() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.website
}

func (b *Brand) ContactInfo() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.contactInfo
}

// SocialLinks returns a copy.
func (b *Brand) SocialLinks() SocialLinks {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.socialLinks.Clone()
}

func (b *Brand) CreatedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.createdAt
}

func (b *Brand) UpdatedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.updatedAt
}

func (b *Brand) IsOwnedBy(companyID string) bool {
	return companyID != "" && b.CompanyID() == companyID
}
