package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/config"
	"github.com/brandvault/brandvault/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantMsg    string
	}{
		{"validation", errors.NewValidationError("bad input"), http.StatusBadRequest, "validation_error", "bad input"},
		{"forbidden", errors.NewForbiddenError("Subscription required"), http.StatusForbidden, "forbidden", "Subscription required"},
		{"conflict wrapped", fmt.Errorf("ctx: %w", errors.NewConflictError("dup")), http.StatusConflict, "conflict", "dup"},
		{"dependency hides cause", errors.NewDependencyError(fmt.Errorf("dial tcp 10.0.0.1")), http.StatusServiceUnavailable, "dependency_error", errors.DependencyMessage},
		{"plain error", fmt.Errorf("secret stack"), http.StatusInternalServerError, "internal_error", "Internal server error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.NotContains(t, w.Body.String(), "10.0.0.1")
			assert.NotContains(t, w.Body.String(), "secret stack")
		})
	}
}

func TestCreatedResponse(t *testing.T) {
	c, w := newContext()
	CreatedResponse(c, map[string]string{"id": "brd_1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "brd_1")
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Seats    int    `json:"additionalUsers" binding:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(signupInput{Email: "a@b.co", Password: "password1"}))

	err := ValidateStruct(signupInput{Email: "nope", Password: "short", Seats: -1})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "password must be at least 8 characters long")
	assert.Contains(t, appErr.Details, "additionalUsers must be greater than or equal to 0")
}

func TestSessionCookie(t *testing.T) {
	cfg := config.CookieConfig{Name: "auth-token", Path: "/", SameSite: "Lax"}

	c, w := newContext()
	SetSessionCookie(c, cfg, "tok", 3600)
	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "auth-token=tok")
	assert.Contains(t, header, "HttpOnly")

	c, w = newContext()
	ClearSessionCookie(c, cfg)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")

	c, _ = newContext()
	c.Request.AddCookie(&http.Cookie{Name: "auth-token", Value: "abc"})
	assert.Equal(t, "abc", GetSessionToken(c, "auth-token"))
	assert.Equal(t, "", GetSessionToken(c, "other"))
}

func TestParseSIDParam(t *testing.T) {
	c, _ := newContext()
	c.Params = gin.Params{{Key: "id", Value: "ast_abc"}}

	got, err := ParseSIDParam(c, "id", "ast", "asset")
	require.NoError(t, err)
	assert.Equal(t, "ast_abc", got)

	_, err = ParseSIDParam(c, "id", "brd", "brand")
	assert.True(t, errors.IsValidationError(err))

	c.Params = nil
	_, err = ParseSIDParam(c, "id", "ast", "asset")
	assert.True(t, errors.IsValidationError(err))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@acme.io", MaskEmail("jane@acme.io"))
	assert.Equal(t, "j***@acme.io", MaskEmail("j@acme.io"))
	assert.Equal(t, "***", MaskEmail("invalid"))
}

func TestBindingError(t *testing.T) {
	assert.NoError(t, BindingError(nil))

	err := BindingError(stderrors.New("unexpected EOF"))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid request body", appErr.Message)
}
