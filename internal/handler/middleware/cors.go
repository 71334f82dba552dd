package middleware

import (
	"log/slog"
	"slices"

	"workshop-site/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the public read API. A "*"
// entry in CORS_ALLOW_ORIGINS opens the API to every origin.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), requestIDHeader)
	}

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_all_origins", corsCfg.AllowAllOrigins))
	return cors.New(corsCfg)
}
