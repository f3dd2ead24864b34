package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers/testutil"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type fakeBlobOpener struct {
	files map[string]string
	token string
}

func (f *fakeBlobOpener) Open(key, token string) (string, error) {
	if token != f.token {
		return "", fmt.Errorf("invalid download token")
	}
	path, ok := f.files[key]
	if !ok {
		return "", fmt.Errorf("blob %s not found", key)
	}
	return path, nil
}

func (f *fakeBlobOpener) TokenParam() string { return "token" }

func TestBlobHandler_Serve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	opener := &fakeBlobOpener{
		files: map[string]string{"cmp_1/assets/logo.png": path},
		token: "good",
	}
	h := NewBlobHandler(opener, logger.NewNopLogger())

	tests := []struct {
		name       string
		key        string
		query      string
		wantStatus int
	}{
		{"valid token", "/cmp_1/assets/logo.png", "?token=good", http.StatusOK},
		{"missing token", "/cmp_1/assets/logo.png", "", http.StatusNotFound},
		{"wrong token", "/cmp_1/assets/logo.png", "?token=bad", http.StatusNotFound},
		{"unknown key", "/cmp_1/assets/other.png", "?token=good", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/uploads"+tt.key+tt.query, nil)
			testutil.SetURLParam(c, "key", tt.key)

			h.Serve(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "png-bytes", w.Body.String())
				assert.Equal(t, "private, no-store", w.Header().Get("Cache-Control"))
			}
		})
	}
}
