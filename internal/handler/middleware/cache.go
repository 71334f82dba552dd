package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses as publicly cacheable for maxAge. A zero
// maxAge disables caching. Error responses override it through httperr.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := "no-store"
	if maxAge > 0 {
		value = fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
	}
}
