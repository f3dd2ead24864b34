package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records request counts and latency per route template.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
