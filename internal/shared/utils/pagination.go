package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampLimit applies def when n < 1 and caps n at max.
func ClampLimit(n, def, max int) int {
	if n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// ParseLimit reads an integer query parameter and clamps it.
func ParseLimit(c *gin.Context, key string, def, max int) int {
	n := 0
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			n = parsed
		}
	}
	return ClampLimit(n, def, max)
}

// ParseBoolQuery treats "true" and "1" as true.
func ParseBoolQuery(c *gin.Context, key string) bool {
	v := c.Query(key)
	return v == "true" || v == "1"
}
