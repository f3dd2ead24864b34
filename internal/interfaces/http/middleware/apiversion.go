package middleware

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIVersion     = "X-API-Version"
	ContextKeyAPIVersion = "api_version"

	CurrentAPIVersion = 1
	MinAPIVersion     = 1
)

// matches "application/vnd.brandvault.v1+json"
var vendorMediaType = regexp.MustCompile(`application/vnd\.brandvault\.v(\d+)\+json`)

// APIVersion resolves the requested API version from X-API-Version, then from a
// vendor Accept header, and echoes the result back. Unsupported versions fall
// back to CurrentAPIVersion.
func APIVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		version := resolveAPIVersion(c)
		c.Set(ContextKeyAPIVersion, version)
		c.Header(HeaderAPIVersion, strconv.Itoa(version))
		c.Next()
	}
}

func GetAPIVersion(c *gin.Context) int {
	if v, ok := c.Get(ContextKeyAPIVersion); ok {
		if ver, ok := v.(int); ok {
			return ver
		}
	}
	return CurrentAPIVersion
}

func resolveAPIVersion(c *gin.Context) int {
	if v, ok := supportedVersion(c.GetHeader(HeaderAPIVersion)); ok {
		return v
	}
	if m := vendorMediaType.FindStringSubmatch(c.GetHeader("Accept")); len(m) == 2 {
		if v, ok := supportedVersion(m[1]); ok {
			return v
		}
	}
	return CurrentAPIVersion
}

func supportedVersion(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < MinAPIVersion || v > CurrentAPIVersion {
		return 0, false
	}
	return v, true
}
