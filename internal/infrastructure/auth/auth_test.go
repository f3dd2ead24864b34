package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/biztime"
)

func testPrincipal() authorization.Principal {
	return authorization.Principal{
		UserID:    "usr_1",
		CompanyID: "cmp_1",
		Role:      authorization.RoleMaster,
		Email:     "ada@acme.io",
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 7*24*time.Hour)

	token, exp, err := svc.Issue(testPrincipal())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	want := testPrincipal()
	assert.Equal(t, want.UserID, claims.UserID)
	assert.Equal(t, want.CompanyID, claims.CompanyID)
	assert.Equal(t, want.Role, claims.Role)
	assert.Equal(t, want.Email, claims.Email)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, _, err := svc.Issue(testPrincipal())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTService("other", time.Hour).Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewJWTService("secret", time.Hour).WithClock(biztime.FixedClock{At: time.Now().Add(-2 * time.Hour)})
		stale, _, err := old.Issue(testPrincipal())
		require.NoError(t, err)

		_, err = svc.Verify(stale)
		assert.Error(t, err)
	})

	t.Run("missing principal", func(t *testing.T) {
		empty, _, err := svc.Issue(authorization.Principal{})
		require.NoError(t, err)
		_, err = svc.Verify(empty)
		assert.Error(t, err)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Verify("correct horse", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("correct horse", "not-a-hash"))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
	assert.Equal(t, 12, NewBcryptPasswordHasher(12).cost)
}
