package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/site"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

var (
	_ PublicRouteGroup = (*SiteRoutes)(nil)
	_ PublicRouteGroup = (*APIRoutes)(nil)
)

// SiteRoutes registers the localized pages.
type SiteRoutes struct {
	handler *Handler
}

// NewSiteRoutes creates a new SiteRoutes instance.
func NewSiteRoutes(handler *Handler) *SiteRoutes {
	return &SiteRoutes{handler: handler}
}

// RegisterPublicRoutes registers /, /theme and one /:locale route per page.
func (r *SiteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/", r.handler.Root)
	rg.GET(site.ThemeRoute, r.handler.SetTheme)
	rg.GET("/:locale", r.handler.LocaleRoot)

	localized := rg.Group("/:locale")
	for _, page := range site.Pages {
		localized.GET("/"+page.Slug, r.handler.Page(page))
	}
}

// APIRoutes registers the JSON API.
type APIRoutes struct {
	handler *Handler
}

// NewAPIRoutes creates a new APIRoutes instance.
func NewAPIRoutes(handler *Handler) *APIRoutes {
	return &APIRoutes{handler: handler}
}

// RegisterPublicRoutes registers GET /messages/:locale.
func (r *APIRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages/:locale", r.handler.Messages)
}
