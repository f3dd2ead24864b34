package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers/testutil"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func TestHealthHandler(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return assert.AnError }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "all up",
			checks:     map[string]HealthCheck{"database": up, "redis": up},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"ok"`, `"database":"up"`, `"version":"test"`},
		},
		{
			name:       "database down",
			checks:     map[string]HealthCheck{"database": down, "redis": up},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"degraded"`, `"database":"down"`, `"redis":"up"`},
		},
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantBody:   []string{`"checks":{}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checks, "test", logger.NewNopLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
			h.Health(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}
