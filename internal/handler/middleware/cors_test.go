//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"workshop-site/internal/handler/middleware"
	"workshop-site/internal/pkg/config"
	"workshop-site/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/promotion", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("allowed origin is echoed", func(t *testing.T) {
		r := corsRouter(config.NewTestConfig().CORS)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/promotion", nil,
			map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		r := corsRouter(config.NewTestConfig().CORS)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/promotion", nil,
			map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = []string{"*"}
		rec := httptest.PerformRequest(t, corsRouter(cfg), http.MethodGet, "/api/promotion", nil,
			map[string]string{"Origin": "https://partner.example"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
