// Package asset models the media catalogue attached to a brand.
package asset

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandvault/brandvault/internal/shared/id"
)

type Asset struct {
	id           string
	brandID      string
	storageKey   string
	originalName string
	fileType     string
	size         int64
	category     Category
	productName  string
	description  string
	tags         []string
	createdAt    time.Time
	mu           sync.RWMutex
}

// Metadata describes an upload before it is persisted.
type Metadata struct {
	OriginalName string
	FileType     string
	Size         int64
	Category     Category
	ProductName  string
	Description  string
	Tags         []string
}

// NewAsset validates metadata and binds it to a stored blob. ProductName is
// dropped unless the category is PRODUCT.
func NewAsset(brandID, storageKey string, m Metadata) (*Asset, error) {
	if brandID == "" {
		return nil, fmt.Errorf("brand ID is required")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	if strings.TrimSpace(m.OriginalName) == "" {
		return nil, fmt.Errorf("original file name is required")
	}
	if !m.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", m.Category)
	}
	if err := ValidateUpload(m.FileType, m.Size); err != nil {
		return nil, err
	}

	productName := ""
	if m.Category == CategoryProduct {
		productName = strings.TrimSpace(m.ProductName)
	}
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Asset{
		id:           id.NewAssetID(),
		brandID:      brandID,
		storageKey:   storageKey,
		originalName: m.OriginalName,
		fileType:     m.FileType,
		size:         m.Size,
		category:     m.Category,
		productName:  productName,
		description:  strings.TrimSpace(m.Description),
		tags:         append([]string(nil), tags...),
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructAsset(
	assetID, brandID, storageKey string,
	m Metadata,
	createdAt time.Time,
) (*Asset, error) {
	if assetID == "" {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !m.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", m.Category)
	}
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Asset{
		id:           assetID,
		brandID:      brandID,
		storageKey:   storageKey,
		originalName: m.OriginalName,
		fileType:     m.FileType,
		size:         m.Size,
		category:     m.Category,
		productName:  m.ProductName,
		description:  m.Description,
		tags:         tags,
		createdAt:    createdAt,
	}, nil
}

func (a *Asset) ID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.id
}

func (a *Asset) BrandID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.brandID
}

// StorageKey is the opaque blob-store key, persisted as the asset filename.
func (a *Asset) StorageKey() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.storageKey
}

func (a *Asset) OriginalName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.originalName
}

func (a *Asset) FileType() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.fileType
}

func (a *Asset) Size() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

func (a *Asset) Category() Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.category
}

func (a *Asset) ProductName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.productName
}

func (a *Asset) Description() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.description
}

func (a *Asset) Tags() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.tags...)
}

func (a *Asset) CreatedAt() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.createdAt
}
