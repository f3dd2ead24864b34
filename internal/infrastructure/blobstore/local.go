package blobstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brandvault/brandvault/internal/shared/biztime"
)

const downloadTokenParam = "token"

// LocalStore writes blobs under a directory. Files are only reachable through
// URLs minted by Presign and checked by Open.
type LocalStore struct {
	root       string
	publicBase string
	secret     []byte
	clock      biztime.Clock
}

func NewLocalStore(root, publicBase, signingKey string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("local storage directory is required")
	}
	if signingKey == "" {
		return nil, fmt.Errorf("local storage signing key is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{
		root:       root,
		publicBase: strings.TrimRight(publicBase, "/"),
		secret:     []byte(signingKey),
		clock:      biztime.SystemClock,
	}, nil
}

// Put returns the unsigned locator of the blob. It does not grant access.
func (s *LocalStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}

// Delete is idempotent: a missing file is not an error.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Presign mints a URL carrying an HS256 token bound to key that expires after ttl.
func (s *LocalStore) Presign(_ context.Context, key string, ttl time.Duration) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if _, err := os.Stat(s.path(key)); err != nil {
		return "", fmt.Errorf("blob %s not found: %w", key, err)
	}

	now := s.clock.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   key,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign download token: %w", err)
	}

	q := url.Values{}
	q.Set(downloadTokenParam, signed)
	return s.publicBase + "/" + key + "?" + q.Encode(), nil
}

// Open checks a token minted by Presign against key and returns the file path.
func (s *LocalStore) Open(key, token string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("missing download token")
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid download token: %w", err)
	}
	if claims.Subject != key {
		return "", fmt.Errorf("download token does not match %s", key)
	}

	path := s.path(key)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("blob %s not found: %w", key, err)
	}
	return path, nil
}

// TokenParam is the query parameter Presign puts the token in.
func (s *LocalStore) TokenParam() string {
	return downloadTokenParam
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
