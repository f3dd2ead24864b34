package accessrequest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
)

func newPending(t *testing.T) *AccessRequest {
	t.Helper()
	r, err := NewAccessRequest("cmp_b", "brd_a", "cmp_a", AccessTypeFull, " hi ")
	require.NoError(t, err)
	return r
}

func TestNewAccessRequest(t *testing.T) {
	r := newPending(t)

	assert.True(t, id.HasPrefix(r.ID(), id.PrefixAccessRequest))
	assert.Equal(t, StatusPending, r.Status())
	assert.Equal(t, AccessTypeFull, r.AccessType())
	assert.Equal(t, "hi", r.Message())
	assert.Nil(t, r.ApprovedAt())
}

func TestNewAccessRequest_SelfRequestIsValidationError(t *testing.T) {
	_, err := NewAccessRequest("cmp_a", "brd_a", "cmp_a", AccessTypeFull, "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewAccessRequest_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		requester  string
		target     string
		accessType AccessType
		message    string
	}{
		{"missing requester", "", "brd_a", AccessTypeFull, ""},
		{"missing target", "cmp_b", "", AccessTypeFull, ""},
		{"bad access type", "cmp_b", "brd_a", "READ", ""},
		{"long message", "cmp_b", "brd_a", AccessTypeLimited, strings.Repeat("m", maxMessageLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccessRequest(tt.requester, tt.target, "cmp_a", tt.accessType, tt.message)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestTransition(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("approve stamps approvedAt", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Transition(StatusApproved, now))
		assert.Equal(t, StatusApproved, r.Status())
		require.NotNil(t, r.ApprovedAt())
		assert.Equal(t, now, *r.ApprovedAt())
	})

	t.Run("deny leaves approvedAt nil", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Transition(StatusDenied, now))
		assert.Equal(t, StatusDenied, r.Status())
		assert.Nil(t, r.ApprovedAt())
	})

	t.Run("pending is not a target", func(t *testing.T) {
		r := newPending(t)
		err := r.Transition(StatusPending, now)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, StatusPending, r.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		r := newPending(t)
		assert.True(t, errors.IsValidationError(r.Transition("REVOKED", now)))
	})
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	now := time.Now()
	for _, first := range []Status{StatusApproved, StatusDenied} {
		for _, second := range []Status{StatusApproved, StatusDenied} {
			t.Run(first.String()+"->"+second.String(), func(t *testing.T) {
				r := newPending(t)
				require.NoError(t, r.Transition(first, now))
				err := r.Transition(second, now.Add(time.Hour))
				assert.True(t, errors.IsConflictError(err))
				assert.Equal(t, first, r.Status())
			})
		}
	}
}

func TestEnsureCanDecide(t *testing.T) {
	assert.NoError(t, EnsureCanDecide("cmp_a", "cmp_a"))
	assert.True(t, errors.IsForbiddenError(EnsureCanDecide("cmp_b", "cmp_a")))
	assert.True(t, errors.IsForbiddenError(EnsureCanDecide("", "")))
}

func TestParseAccessType(t *testing.T) {
	got, err := ParseAccessType("")
	require.NoError(t, err)
	assert.Equal(t, AccessTypeFull, got)

	got, err = ParseAccessType("limited")
	require.NoError(t, err)
	assert.Equal(t, AccessTypeLimited, got)

	_, err = ParseAccessType("admin")
	assert.Error(t, err)
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusDenied.IsTerminal())
	assert.True(t, StatusApproved.GrantsAccess())
	assert.False(t, StatusDenied.GrantsAccess())

	s, err := ParseStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)
}
