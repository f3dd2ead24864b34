package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
)

func TestBrandMapper_SocialLinksColumn(t *testing.T) {
	b, err := brand.NewBrand("cmp_1", "Acme")
	require.NoError(t, err)
	require.NoError(t, b.UpdateProfile(brand.Profile{
		Name:        "Acme",
		SocialLinks: map[string]string{"twitter": "https://x.com/acme"},
	}))

	m := NewBrandMapper()
	model, err := m.ToModel(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"twitter":"https://x.com/acme"}`, string(model.SocialLinks))

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, "https://x.com/acme", back.SocialLinks()["twitter"])
}

func TestBrandMapper_NullSocialLinks(t *testing.T) {
	back, err := NewBrandMapper().ToEntity(&models.BrandModel{ID: "brd_1", CompanyID: "cmp_1", Name: "Acme"})
	require.NoError(t, err)
	assert.NotNil(t, back.SocialLinks())
	assert.Empty(t, back.SocialLinks())
}

func TestAssetMapper_TagsKeepOrder(t *testing.T) {
	model := &models.AssetModel{
		ID:           "ast_1",
		BrandID:      "brd_1",
		Filename:     "cmp_1/logo/1-a.png",
		OriginalName: "a.png",
		FileType:     asset.MIMEPNG,
		Size:         10,
		Category:     "LOGO",
		Tags:         datatypes.JSON(`["z","a","m"]`),
		CreatedAt:    time.Now(),
	}

	entity, err := NewAssetMapper().ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, entity.Tags())
	assert.Equal(t, "cmp_1/logo/1-a.png", entity.StorageKey())
}

func TestAssetMapper_RejectsUnknownCategory(t *testing.T) {
	_, err := NewAssetMapper().ToEntity(&models.AssetModel{ID: "ast_1", Category: "VIDEO"})
	assert.Error(t, err)
}

func TestCompanyMapper_OptionalHandles(t *testing.T) {
	m := NewCompanyMapper()
	entity, err := m.ToEntity(&models.CompanyModel{ID: "cmp_1", Name: "Acme", SubscriptionStatus: "ACTIVE"})
	require.NoError(t, err)
	assert.False(t, entity.HasBillingCustomer())

	model := m.ToModel(entity)
	assert.Nil(t, model.BillingCustomerID)
	assert.Nil(t, model.SubscriptionID)

	_, err = m.ToEntity(&models.CompanyModel{ID: "cmp_1", SubscriptionStatus: "TRIAL"})
	assert.Error(t, err)
}
