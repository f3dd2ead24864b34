package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/id"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification("usr_1", TypeAccessApproved, "Access Approved", "content")
	require.NoError(t, err)

	assert.True(t, id.HasPrefix(n.ID(), id.PrefixNotification))
	assert.Equal(t, "usr_1", n.RecipientID())
	assert.Equal(t, TypeAccessApproved, n.Type())
	assert.False(t, n.IsRead())
}

func TestNewNotification_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		ntype     Type
		title     string
		content   string
	}{
		{"missing recipient", "", TypeNewAssets, "t", "c"},
		{"unknown type", "usr_1", "PROMO", "t", "c"},
		{"missing title", "usr_1", TypeNewAssets, "", "c"},
		{"long title", "usr_1", TypeNewAssets, strings.Repeat("t", maxTitleLength+1), "c"},
		{"long content", "usr_1", TypeNewAssets, "t", strings.Repeat("c", maxContentLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.recipient, tt.ntype, tt.title, tt.content)
			assert.Error(t, err)
		})
	}
}

func TestIntents(t *testing.T) {
	req := AccessRequested("cmp_a", "Beta Inc", "Acme")
	assert.Equal(t, []string{"cmp_a"}, req.CompanyIDs)
	assert.Equal(t, TypeAccessRequest, req.Type)
	assert.Equal(t, `Beta Inc has requested access to your brand "Acme"`, req.Content)

	ok := AccessApproved("cmp_b", "Acme")
	assert.Equal(t, TypeAccessApproved, ok.Type)
	assert.Equal(t, `Your access request to "Acme" has been approved`, ok.Content)

	no := AccessDenied("cmp_b", "Acme")
	assert.Equal(t, TypeAccessDenied, no.Type)
	assert.Equal(t, []string{"cmp_b"}, no.CompanyIDs)

	one := NewAssets([]string{"cmp_b", "cmp_c"}, "Acme", 1)
	assert.Equal(t, `1 new asset has been added to "Acme"`, one.Content)
	assert.Len(t, one.CompanyIDs, 2)
	assert.Equal(t, `3 new assets have been added to "Acme"`, NewAssets(nil, "Acme", 3).Content)
	assert.True(t, NewAssets(nil, "Acme", 3).IsEmpty())
}

func TestNewAssetsCopiesCompanyIDs(t *testing.T) {
	ids := []string{"cmp_b"}
	intent := NewAssets(ids, "Acme", 1)
	ids[0] = "cmp_z"
	assert.Equal(t, "cmp_b", intent.CompanyIDs[0])
}
