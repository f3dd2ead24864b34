package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}

	other, err := Generate(0)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestNewHelpersUsePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{"company", NewCompanyID, PrefixCompany},
		{"user", NewUserID, PrefixUser},
		{"brand", NewBrandID, PrefixBrand},
		{"asset", NewAssetID, PrefixAsset},
		{"access request", NewAccessRequestID, PrefixAccessRequest},
		{"note", NewNoteID, PrefixNote},
		{"notification", NewNotificationID, PrefixNotification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.gen()
			assert.True(t, HasPrefix(v, tt.prefix), v)
			assert.Len(t, v, len(tt.prefix)+1+DefaultLength)
		})
	}
}

func TestParsePrefixedID(t *testing.T) {
	tests := []struct {
		input      string
		wantPrefix string
		wantShort  string
		wantErr    bool
	}{
		{"brd_abc123", "brd", "abc123", false},
		{"a_b_c", "a", "b_c", false},
		{"nounderscore", "", "", true},
		{"_leading", "", "", true},
		{"trailing_", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prefix, short, err := ParsePrefixedID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantShort, short)
		})
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("usr_x", PrefixUser))
	assert.False(t, HasPrefix("usr_x", PrefixBrand))
	assert.False(t, HasPrefix("usr", PrefixUser))
}
