package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/application/testutil"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/markdown"
	infrapermission "github.com/brandvault/brandvault/internal/infrastructure/permission"
	"github.com/brandvault/brandvault/internal/shared/errors"
)

func TestNoteUseCases(t *testing.T) {
	env := testutil.NewEnv(t)
	acme := env.SeedTenant(t, "Acme", company.SubscriptionStatusUnpaid)
	alice := env.SeedUser(t, acme.Company.ID(), "alice@acme.test", user.RoleUser)
	bob := env.SeedUser(t, acme.Company.ID(), "bob@acme.test", user.RoleUser)
	target := env.SeedTenant(t, "Target", company.SubscriptionStatusActive)
	rival := env.SeedTenant(t, "Rival", company.SubscriptionStatusActive)

	enforcer, err := infrapermission.NewMemoryEnforcer(infrapermission.DefaultRules(), env.Logger)
	require.NoError(t, err)

	create := NewCreateNoteUseCase(env.Brands, env.Notes, env.Users, markdown.NewRenderer(), env.Logger)
	list := NewListNotesUseCase(env.Notes, env.Users, env.Logger)
	remove := NewDeleteNoteUseCase(env.Notes, enforcer, env.Logger)

	ctx := t.Context()

	aliceNote, err := create.Execute(ctx, testutil.PrincipalFor(alice), target.Brand.ID(), "<b>Great</b> supplier")
	require.NoError(t, err)
	assert.Equal(t, "Great supplier", aliceNote.Content)
	assert.Equal(t, alice.DisplayName(), aliceNote.AuthorName)

	_, err = create.Execute(ctx, testutil.PrincipalFor(bob), target.Brand.ID(), "second")
	require.NoError(t, err)
	_, err = create.Execute(ctx, rival.Principal(), target.Brand.ID(), "rival note")
	require.NoError(t, err)

	t.Run("create rejects unknown brand and blank content", func(t *testing.T) {
		_, err := create.Execute(ctx, acme.Principal(), "brd_missing", "x")
		assert.True(t, errors.IsNotFoundError(err))

		_, err = create.Execute(ctx, acme.Principal(), target.Brand.ID(), "<i></i>  ")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("list is scoped to the company", func(t *testing.T) {
		notes, err := list.Execute(ctx, acme.Principal(), target.Brand.ID())
		require.NoError(t, err)
		require.Len(t, notes, 2)
		for _, n := range notes {
			assert.NotEqual(t, "rival note", n.Content)
		}

		all, err := list.Execute(ctx, acme.Principal(), "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		none, err := list.Execute(ctx, acme.Principal(), rival.Brand.ID())
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("another member cannot delete", func(t *testing.T) {
		err := remove.Execute(ctx, testutil.PrincipalFor(bob), aliceNote.ID)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("another company sees not found", func(t *testing.T) {
		err := remove.Execute(ctx, rival.Principal(), aliceNote.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("master moderates", func(t *testing.T) {
		require.NoError(t, remove.Execute(ctx, acme.Principal(), aliceNote.ID))
		err := remove.Execute(ctx, acme.Principal(), aliceNote.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteNote_AuthorCanDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	acme := env.SeedTenant(t, "Acme", company.SubscriptionStatusActive)
	alice := env.SeedUser(t, acme.Company.ID(), "alice@acme.test", user.RoleUser)

	enforcer, err := infrapermission.NewMemoryEnforcer(infrapermission.DefaultRules(), env.Logger)
	require.NoError(t, err)

	create := NewCreateNoteUseCase(env.Brands, env.Notes, env.Users, markdown.NewRenderer(), env.Logger)
	remove := NewDeleteNoteUseCase(env.Notes, enforcer, env.Logger)

	n, err := create.Execute(t.Context(), testutil.PrincipalFor(alice), acme.Brand.ID(), "own brand note")
	require.NoError(t, err)
	assert.NoError(t, remove.Execute(t.Context(), testutil.PrincipalFor(alice), n.ID))
}
