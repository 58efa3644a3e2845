// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/config"
	"github.com/guttosm/multilingual/internal/http"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	InitializeLogger(cfg.Log)

	siteComponents, err := InitializeSite(cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("initialize site: %w", err)
	}

	routerComponents := InitializeRouter(siteComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), nil
}
