package authorization

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetPrincipal(c))

	SetPrincipal(c, &Principal{UserID: "usr_1", CompanyID: "cmp_1", Role: RoleMaster})
	p := GetPrincipal(c)
	require.NotNil(t, p)
	assert.Equal(t, "cmp_1", p.CompanyID)
	assert.True(t, p.IsMaster())
}

func TestIsMaster(t *testing.T) {
	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.IsMaster())
	assert.False(t, (&Principal{Role: "USER"}).IsMaster())
}
