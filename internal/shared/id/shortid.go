package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 16
)

// Stripe-style prefixes for every persisted entity.
const (
	PrefixCompany       = "cmp"
	PrefixUser          = "usr"
	PrefixBrand         = "brd"
	PrefixAsset         = "ast"
	PrefixAccessRequest = "arq"
	PrefixNote          = "nte"
	PrefixNotification  = "ntf"
)

// Generate returns a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))
	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}
	return string(result), nil
}

func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// New generates a prefixed identifier of DefaultLength and panics if the
// system random source fails.
func New(prefix string) string {
	s, err := GenerateWithPrefix(prefix, DefaultLength)
	if err != nil {
		panic(err)
	}
	return s
}

func NewCompanyID() string       { return New(PrefixCompany) }
func NewUserID() string          { return New(PrefixUser) }
func NewBrandID() string         { return New(PrefixBrand) }
func NewAssetID() string         { return New(PrefixAsset) }
func NewAccessRequestID() string { return New(PrefixAccessRequest) }
func NewNoteID() string          { return New(PrefixNote) }
func NewNotificationID() string  { return New(PrefixNotification) }

// ParsePrefixedID splits "prefix_short" at the first underscore.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// HasPrefix reports whether prefixedID is well formed and carries the expected prefix.
func HasPrefix(prefixedID, expectedPrefix string) bool {
	prefix, _, err := ParsePrefixedID(prefixedID)
	return err == nil && prefix == expectedPrefix
}
