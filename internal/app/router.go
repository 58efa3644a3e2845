package app

import (
	"github.com/guttosm/multilingual/config"
	"github.com/guttosm/multilingual/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(siteComponents *SiteComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(siteComponents.Resolver, siteComponents.Negotiator, siteComponents.Renderer)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("messages", siteComponents.Store)

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config: http.RouterConfig{
			RateLimit:   cfg.Server.RateLimit,
			RateWindow:  cfg.Server.RateWindow,
			CORSOrigins: cfg.Server.CORSOrigins,
		},
	}
}
