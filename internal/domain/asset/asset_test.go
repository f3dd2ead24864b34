package asset

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
)

func logoMetadata() Metadata {
	return Metadata{
		OriginalName: "logo.png",
		FileType:     MIMEPNG,
		Size:         1024,
		Category:     CategoryLogo,
		ProductName:  "ignored",
		Tags:         []string{"primary"},
	}
}

func TestNewAsset(t *testing.T) {
	a, err := NewAsset("brd_1", "cmp_1/logo/1-logo.png", logoMetadata())
	require.NoError(t, err)

	assert.True(t, id.HasPrefix(a.ID(), id.PrefixAsset))
	assert.Equal(t, "brd_1", a.BrandID())
	assert.Equal(t, CategoryLogo, a.Category())
	assert.Empty(t, a.ProductName(), "product name only kept for PRODUCT")
	assert.Equal(t, []string{"primary"}, a.Tags())
}

func TestNewAsset_ProductKeepsProductName(t *testing.T) {
	m := logoMetadata()
	m.Category = CategoryProduct
	m.ProductName = " Rocket Skates "

	a, err := NewAsset("brd_1", "k", m)
	require.NoError(t, err)
	assert.Equal(t, "Rocket Skates", a.ProductName())
}

func TestNewAsset_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		brand  string
		key    string
		mutate func(*Metadata)
	}{
		{"missing brand", "", "k", func(*Metadata) {}},
		{"missing key", "brd_1", "", func(*Metadata) {}},
		{"missing name", "brd_1", "k", func(m *Metadata) { m.OriginalName = " " }},
		{"bad category", "brd_1", "k", func(m *Metadata) { m.Category = "VIDEO" }},
		{"bad type", "brd_1", "k", func(m *Metadata) { m.FileType = "image/gif" }},
		{"too large", "brd_1", "k", func(m *Metadata) { m.Size = MaxFileSize + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := logoMetadata()
			tt.mutate(&m)
			_, err := NewAsset(tt.brand, tt.key, m)
			assert.Error(t, err)
		})
	}
}

func TestValidateUpload(t *testing.T) {
	for _, mime := range []string{MIMEJPEG, MIMEPNG, MIMESVG, MIMEWebP, MIMEPDF, MIMEPostScript} {
		assert.NoError(t, ValidateUpload(mime, 1), mime)
	}

	assert.NoError(t, ValidateUpload(MIMEPNG, MaxFileSize))
	assert.True(t, errors.IsValidationError(ValidateUpload(MIMEPNG, MaxFileSize+1)))
	assert.True(t, errors.IsValidationError(ValidateUpload("image/gif", 10)))
	assert.True(t, errors.IsValidationError(ValidateUpload("IMAGE/PNG", 10)))
	assert.True(t, errors.IsValidationError(ValidateUpload(MIMEPNG, 0)))
	assert.Equal(t, int64(10485760), MaxFileSize)
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"red, blue ,green", []string{"red", "blue", "green"}},
		{"spring sale,,  hero ", []string{"spring sale", "hero"}},
		{"b,a,b", []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_logo__final_.png", SanitizeFilename("my logo (final).png"))
	assert.Equal(t, "caf_.svg", SanitizeFilename("café.svg"))
	assert.Equal(t, "a-b.c", SanitizeFilename("a-b.c"))
	assert.Equal(t, "_etc_passwd", SanitizeFilename("/etc/passwd"))
}

func TestStorageKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	got := StorageKey("cmp_1", CategoryCampaign, at, "Summer Ad.pdf")
	assert.Equal(t, "cmp_1/campaign/1700000000123-Summer_Ad.pdf", got)
	assert.Equal(t, 3, strings.Count(got, "/")+1)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("product")
	require.NoError(t, err)
	assert.Equal(t, CategoryProduct, c)

	_, err = ParseCategory("banner")
	assert.Error(t, err)
}

func TestCountByCategory(t *testing.T) {
	mk := func(c Category) *Asset {
		a, err := ReconstructAsset(id.NewAssetID(), "brd_1", "k", Metadata{Category: c}, time.Now())
		require.NoError(t, err)
		return a
	}

	assert.Equal(t, Counts{}, CountByCategory(nil))
	assert.Equal(t, Counts{Total: 1, Logos: 1}, CountByCategory([]*Asset{mk(CategoryLogo)}))
	assert.Equal(t,
		Counts{Total: 4, Logos: 1, Products: 2, Campaigns: 1},
		CountByCategory([]*Asset{mk(CategoryProduct), mk(CategoryLogo), nil, mk(CategoryCampaign), mk(CategoryProduct)}),
	)
}
