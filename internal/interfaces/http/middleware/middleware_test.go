package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/auth"
	infrapermission "github.com/brandvault/brandvault/internal/infrastructure/permission"
	"github.com/brandvault/brandvault/internal/infrastructure/ratelimit"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const cookieName = "auth-token"

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		p := authorization.GetPrincipal(c)
		if p == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, p.UserID)
	})
	engine.GET("/ping", chain...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, jwt *auth.JWTService) string {
	t.Helper()
	token, _, err := jwt.Issue(authorization.Principal{UserID: "usr_1", CompanyID: "cmp_1", Role: "MASTER", Email: "a@b.co"})
	require.NoError(t, err)
	return token
}

type userLoaderFunc func(ctx context.Context, id string) (*user.User, error)

func (f userLoaderFunc) GetByID(ctx context.Context, id string) (*user.User, error) {
	return f(ctx, id)
}

func storedUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser("usr_1", "cmp_1", "ada@acme.io", "hash", "Ada", "Lovelace", role, now, now)
	require.NoError(t, err)
	return u
}

func existingUser(t *testing.T) UserLoader {
	u := storedUser(t, user.RoleMaster)
	return userLoaderFunc(func(context.Context, string) (*user.User, error) { return u, nil })
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", time.Hour)
	token := issueToken(t, jwt)
	engine := newEngine(NewAuthMiddleware(jwt, existingUser(t), cookieName, logger.NewNopLogger()).RequireAuth())

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookieName, Value: token}) },
			wantStatus: http.StatusOK,
			wantBody:   "usr_1",
		},
		{
			name:       "bearer header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus: http.StatusOK,
			wantBody:   "usr_1",
		},
		{
			name:       "missing",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "tampered token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token+"x") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			tt.prepare(req)
			w := serve(engine, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RequireAuth_ReloadsUser(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", time.Hour)
	token := issueToken(t, jwt)

	tests := []struct {
		name       string
		users      UserLoader
		wantStatus int
		wantRole   string
	}{
		{
			name:       "role taken from stored user",
			users:      userLoaderFunc(func(context.Context, string) (*user.User, error) { return storedUser(t, user.RoleUser), nil }),
			wantStatus: http.StatusOK,
			wantRole:   "USER",
		},
		{
			name:       "removed user",
			users:      userLoaderFunc(func(context.Context, string) (*user.User, error) { return nil, nil }),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "store unavailable",
			users:      userLoaderFunc(func(context.Context, string) (*user.User, error) { return nil, stderrors.New("db down") }),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/ping", NewAuthMiddleware(jwt, tt.users, cookieName, logger.NewNopLogger()).RequireAuth(),
				func(c *gin.Context) { c.String(http.StatusOK, authorization.GetPrincipal(c).Role) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
			w := serve(engine, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantRole != "" {
				assert.Equal(t, tt.wantRole, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", time.Hour)
	engine := newEngine(NewAuthMiddleware(jwt, existingUser(t), cookieName, logger.NewNopLogger()).OptionalAuth())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := serve(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: issueToken(t, jwt)})
	w = serve(engine, req)
	assert.Equal(t, "usr_1", w.Body.String())

	gone := userLoaderFunc(func(context.Context, string) (*user.User, error) { return nil, nil })
	engine = newEngine(NewAuthMiddleware(jwt, gone, cookieName, logger.NewNopLogger()).OptionalAuth())
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: issueToken(t, jwt)})
	w = serve(engine, req)
	assert.Equal(t, "anonymous", w.Body.String())
}

type hitCounter struct{ hits []string }

func (h *hitCounter) RateLimitHit(route string) { h.hits = append(h.hits, route) }

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, ratelimit.Policy) (bool, error) {
	return false, stderrors.New("redis down")
}

func (failingLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter(t *testing.T) {
	counter := &hitCounter{}
	rl := NewRateLimiter(ratelimit.NewMemoryRateLimiter(), 2, time.Minute, counter, logger.NewNopLogger())
	engine := newEngine(rl.Limit())

	codes := make([]int, 0, 3)
	for range 3 {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, []string{"/ping"}, counter.hits)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	rl := NewRateLimiter(failingLimiter{}, 1, time.Minute, nil, logger.NewNopLogger())
	w := serve(newEngine(rl.Limit()), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-123")
	w = serve(engine, req)
	assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestAPIVersion(t *testing.T) {
	engine := newEngine(APIVersion())

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "default", want: "1"},
		{name: "explicit header", headers: map[string]string{HeaderAPIVersion: "1"}, want: "1"},
		{name: "unsupported header", headers: map[string]string{HeaderAPIVersion: "9"}, want: "1"},
		{name: "vendor accept", headers: map[string]string{"Accept": "application/vnd.brandvault.v1+json"}, want: "1"},
		{name: "garbage", headers: map[string]string{HeaderAPIVersion: "v2"}, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := serve(engine, req)
			assert.Equal(t, tt.want, w.Header().Get(HeaderAPIVersion))
		})
	}
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	engine := newEngine(CORS([]string{"https://app.test"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.test")
	w := serve(engine, req)
	assert.Equal(t, "https://app.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = serve(engine, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recordedRequest struct {
	route  string
	status int
}

type fakeObserver struct{ seen []recordedRequest }

func (f *fakeObserver) ObserveRequest(_ string, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, recordedRequest{route: route, status: status})
}

func TestMetrics(t *testing.T) {
	observer := &fakeObserver{}
	engine := newEngine(Metrics(observer))

	serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Len(t, observer.seen, 1)
	assert.Equal(t, recordedRequest{route: "/ping", status: http.StatusOK}, observer.seen[0])
}

func TestPermissionMiddleware(t *testing.T) {
	enforcer, err := infrapermission.NewMemoryEnforcer(infrapermission.DefaultRules(), logger.NewNopLogger())
	require.NoError(t, err)
	mw := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			authorization.SetPrincipal(c, &authorization.Principal{UserID: "usr_1", CompanyID: "cmp_1", Role: role})
		}
	}

	w := serve(newEngine(withRole("MASTER"), mw.RequirePermission(permission.ResourceTeam, permission.ActionManage)),
		httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newEngine(withRole("USER"), mw.RequirePermission(permission.ResourceTeam, permission.ActionManage)),
		httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(newEngine(mw.RequirePermission(permission.ResourceTeam, permission.ActionRead)),
		httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
