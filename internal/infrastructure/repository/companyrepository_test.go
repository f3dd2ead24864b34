package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/company"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func TestCompanyRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCompanyRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()

	c := seedCompany(t, gdb, "Acme")

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.Name())
	assert.Equal(t, company.SubscriptionStatusUnpaid, found.SubscriptionStatus())

	missing, err := repo.GetByID(ctx, "cmp_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompanyRepository_BillingLifecycle(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCompanyRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()

	c := seedCompany(t, gdb, "Acme")
	require.NoError(t, c.AttachBillingCustomer("cus_123"))
	ends := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, c.ApplySubscription(company.SubscriptionStatusActive, "sub_1", &ends))
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByBillingCustomerID(ctx, "cus_123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID(), found.ID())
	assert.Equal(t, company.SubscriptionStatusActive, found.SubscriptionStatus())
	assert.Equal(t, "sub_1", found.SubscriptionID())
	require.NotNil(t, found.SubscriptionEndsAt())
	assert.WithinDuration(t, ends, *found.SubscriptionEndsAt(), time.Second)

	none, err := repo.GetByBillingCustomerID(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCompanyRepository_UpdateMissing(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCompanyRepository(gdb, logger.NewNopLogger())

	c, err := company.NewCompany("Ghost")
	require.NoError(t, err)

	err = repo.Update(t.Context(), c)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCompanyRepository_ListByIDs(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCompanyRepository(gdb, logger.NewNopLogger())

	a := seedCompany(t, gdb, "A")
	b := seedCompany(t, gdb, "B")
	seedCompany(t, gdb, "C")

	list, err := repo.ListByIDs(t.Context(), []string{a.ID(), b.ID()})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := repo.ListByIDs(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
