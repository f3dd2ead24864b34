package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"time"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/application/testutil"
	"github.com/brandvault/brandvault/internal/infrastructure/config"
	sharedConfig "github.com/brandvault/brandvault/internal/shared/config"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()

	env := testutil.NewEnv(t)
	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", ExpDays: 1},
			Cookie:   sharedConfig.CookieConfig{Name: "auth-token", Path: "/", SameSite: "Lax"},
		},
		Storage: sharedConfig.StorageConfig{
			Driver:         "local",
			LocalDir:       t.TempDir(),
			PublicBaseURL:  "http://localhost/uploads",
			PresignMinutes: 15,
		},
		RateLimit: sharedConfig.RateLimitConfig{Limit: 100, WindowSeconds: 60},
	}

	c, err := NewContainer(t.Context(), env.DB, cfg, logger.NewNopLogger(), "test")
	require.NoError(t, err)
	c.SetupRoutes()
	t.Cleanup(func() { _ = c.Shutdown(t.Context()) })
	return c
}

func doRequest(c *Container, method, path string, body interface{}, cookies ...*nethttp.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *nethttp.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "auth-token" {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestContainer_SignupSessionFlow(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, nethttp.MethodPost, "/api/auth/signup", map[string]string{
		"email":       "owner@acme.test",
		"password":    "correct-horse",
		"firstName":   "Ada",
		"lastName":    "Owner",
		"companyName": "Acme",
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	session := sessionCookie(t, w)

	w = doRequest(c, nethttp.MethodGet, "/api/auth/me", nil, session)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@acme.test")

	w = doRequest(c, nethttp.MethodGet, "/api/team", nil, session)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	// A fresh company has no subscription yet.
	w = doRequest(c, nethttp.MethodPut, "/api/brand", map[string]string{"name": "Acme Shoes"}, session)
	assert.Equal(t, nethttp.StatusForbidden, w.Code)

	w = doRequest(c, nethttp.MethodPost, "/api/auth/login", map[string]string{
		"email":    "owner@acme.test",
		"password": "wrong-password",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestContainer_RemovedMemberLosesSession(t *testing.T) {
	c := newTestContainer(t)

	w := doRequest(c, nethttp.MethodPost, "/api/auth/signup", map[string]string{
		"email":       "owner@acme.test",
		"password":    "correct-horse",
		"firstName":   "Ada",
		"lastName":    "Owner",
		"companyName": "Acme",
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	owner := sessionCookie(t, w)

	w = doRequest(c, nethttp.MethodPost, "/api/team", map[string]string{
		"email":     "member@acme.test",
		"password":  "member-horse",
		"firstName": "Bob",
		"lastName":  "Member",
	}, owner)
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	var added struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.NotEmpty(t, added.Data.ID)

	w = doRequest(c, nethttp.MethodPost, "/api/auth/login", map[string]string{
		"email":    "member@acme.test",
		"password": "member-horse",
	})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())
	member := sessionCookie(t, w)

	w = doRequest(c, nethttp.MethodGet, "/api/brand", nil, member)
	require.Equal(t, nethttp.StatusOK, w.Code)

	w = doRequest(c, nethttp.MethodDelete, "/api/team/"+added.Data.ID, nil, owner)
	require.Equal(t, nethttp.StatusNoContent, w.Code, w.Body.String())

	for _, path := range []string{"/api/brand", "/api/notifications", "/api/auth/me"} {
		w = doRequest(c, nethttp.MethodGet, path, nil, member)
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code, path)
	}

	// Browse stays public; the stale session is simply ignored.
	w = doRequest(c, nethttp.MethodGet, "/api/brands/browse", nil, member)
	assert.Equal(t, nethttp.StatusOK, w.Code)

	w = doRequest(c, nethttp.MethodGet, "/api/brand", nil, owner)
	assert.Equal(t, nethttp.StatusOK, w.Code)
}

func TestContainer_PublicAndProtectedRoutes(t *testing.T) {
	c := newTestContainer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "health", method: nethttp.MethodGet, path: "/health", wantStatus: nethttp.StatusOK},
		{name: "anonymous browse", method: nethttp.MethodGet, path: "/api/brands/browse", wantStatus: nethttp.StatusOK},
		{name: "team needs session", method: nethttp.MethodGet, path: "/api/team", wantStatus: nethttp.StatusUnauthorized},
		{name: "notifications need session", method: nethttp.MethodGet, path: "/api/notifications", wantStatus: nethttp.StatusUnauthorized},
		{name: "search needs session", method: nethttp.MethodGet, path: "/api/search?q=a", wantStatus: nethttp.StatusUnauthorized},
		{name: "unknown route", method: nethttp.MethodGet, path: "/api/nope", wantStatus: nethttp.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(c, tt.method, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}

	w := doRequest(c, nethttp.MethodGet, "/metrics", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "brandvault_http_requests_total")
}

func TestContainer_LocalUploadsRequireSignedURL(t *testing.T) {
	c := newTestContainer(t)
	ctx := t.Context()

	const key = "cmp_1/assets/logo.png"
	_, err := c.svcs.blobs.Put(ctx, key, "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	w := doRequest(c, nethttp.MethodGet, "/uploads/"+key, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)

	w = doRequest(c, nethttp.MethodGet, "/uploads/"+key+"?token=forged", nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)

	signed, err := c.svcs.blobs.Presign(ctx, key, time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(signed)
	require.NoError(t, err)

	w = doRequest(c, nethttp.MethodGet, u.RequestURI(), nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
}
