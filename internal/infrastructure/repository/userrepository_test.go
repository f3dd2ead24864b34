package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/user"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func newTestUser(t *testing.T, companyID, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(companyID, email, "$2a$12$hash", "Ada", "Lovelace", role)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()
	c := seedCompany(t, gdb, "Acme")

	u := newTestUser(t, c.ID(), "ada@acme.io", user.RoleMaster)
	require.NoError(t, repo.Create(ctx, u))

	byEmail, err := repo.GetByEmail(ctx, "ada@acme.io")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())
	assert.Equal(t, user.RoleMaster, byEmail.Role())

	exists, err := repo.ExistsByEmail(ctx, "ada@acme.io")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@acme.io")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNopLogger())
	c := seedCompany(t, gdb, "Acme")

	require.NoError(t, repo.Create(t.Context(), newTestUser(t, c.ID(), "dup@acme.io", user.RoleMaster)))
	err := repo.Create(t.Context(), newTestUser(t, c.ID(), "dup@acme.io", user.RoleUser))
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNopLogger())
	ctx := t.Context()
	acme := seedCompany(t, gdb, "Acme")
	globex := seedCompany(t, gdb, "Globex")

	master := newTestUser(t, acme.ID(), "m@acme.io", user.RoleMaster)
	member := newTestUser(t, acme.ID(), "u@acme.io", user.RoleUser)
	other := newTestUser(t, globex.ID(), "g@globex.io", user.RoleMaster)
	for _, u := range []*user.User{master, member, other} {
		require.NoError(t, repo.Create(ctx, u))
	}

	list, err := repo.ListByCompanyID(ctx, acme.ID())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ids, err := repo.ListIDsByCompanyIDs(ctx, []string{acme.ID(), globex.ID()})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{master.ID(), member.ID(), other.ID()}, ids)

	require.NoError(t, repo.Delete(ctx, member.ID()))
	gone, err := repo.GetByID(ctx, member.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, apperrors.IsNotFoundError(repo.Delete(ctx, member.ID())))
}
