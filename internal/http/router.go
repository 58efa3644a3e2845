// Package http wires the gin router: localized pages, the messages API and
// the infrastructure endpoints.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/multilingual/internal/i18n"
	"github.com/guttosm/multilingual/internal/metrics"
	"github.com/guttosm/multilingual/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the site.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, handler, &cfg)

	registerInfrastructureRoutes(router, healthHandler)

	NewAPIRoutes(handler).RegisterPublicRoutes(router.Group("/api"))
	NewSiteRoutes(handler).RegisterPublicRoutes(&router.RouterGroup)

	router.NoRoute(handler.NotFound)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, handler *Handler, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Accept-Encoding", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(handler.Recover),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}

	router.Use(i18n.Locale(handler.negotiator))
}

// registerInfrastructureRoutes registers health and metrics routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
