package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workshop-site/internal/handler/api"
	"workshop-site/internal/handler/middleware"
	"workshop-site/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, healthHandler *api.HealthHandler, promotionHandler *api.PromotionHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.Server, healthHandler, promotionHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, srv config.ServerConfig, healthHandler *api.HealthHandler, promotionHandler *api.PromotionHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/promotion", Handler: promotionHandler.Get, Mw: []gin.HandlerFunc{middleware.CacheControl(0)}},
		})

		cached := []gin.HandlerFunc{middleware.CacheControl(srv.CacheMaxAge)}
		cities := apiGroup.Group("/cities")
		{
			addRoutes(cities, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCities, Mw: cached},
				{Method: http.MethodGet, Path: "/:slug", Handler: catalogHandler.GetCity, Mw: cached},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
