package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/authorization"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional JSON body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// NewRawContext creates a test gin.Context whose body is sent verbatim.
func NewRawContext(method, path string, body []byte, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// MultipartFile is one file part of a multipart request.
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

// NewMultipartContext creates a test gin.Context carrying a multipart form.
func NewMultipartContext(method, path string, fields map[string]string, file *MultipartFile) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if file != nil {
		part, _ := mw.CreateFormFile(file.Field, file.Filename)
		_, _ = part.Write(file.Content)
	}
	_ = mw.Close()

	return NewRawContext(method, path, buf.Bytes(), map[string]string{"Content-Type": mw.FormDataContentType()})
}

// SetPrincipal simulates the auth middleware.
func SetPrincipal(c *gin.Context, p *authorization.Principal) {
	authorization.SetPrincipal(c, p)
}

// TestPrincipal returns a MASTER of company cmp_test.
func TestPrincipal() *authorization.Principal {
	return &authorization.Principal{
		UserID:    "usr_test",
		CompanyID: "cmp_test",
		Role:      authorization.RoleMaster,
		Email:     "master@test.co",
	}
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
