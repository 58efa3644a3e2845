package app

import (
	"os"

	"github.com/guttosm/multilingual/config"
	"github.com/guttosm/multilingual/internal/i18n"
	"github.com/guttosm/multilingual/internal/logger"
	"github.com/guttosm/multilingual/internal/messages"
	"github.com/guttosm/multilingual/internal/site"
)

// SiteComponents holds the message and rendering components.
type SiteComponents struct {
	Store      *messages.Store
	Resolver   *messages.Resolver
	Negotiator *i18n.Negotiator
	Renderer   *site.Renderer
}

// NewResolver builds a resolver reading the message tree under
// cfg.MessagesDir on every call.
func NewResolver(cfg config.SiteConfig) (*messages.Resolver, *messages.Store) {
	store := messages.NewStore(os.DirFS(cfg.MessagesDir))
	resolver := messages.NewResolver(store, messages.NewLocaleSet(cfg.Locales...), logger.Component("messages"))
	return resolver, store
}

// InitializeSite initializes the resolver, locale negotiation and page
// templates.
func InitializeSite(cfg config.SiteConfig) (*SiteComponents, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, err
	}

	resolver, store := NewResolver(cfg)

	log := logger.Component("app")
	if err := store.Check(); err != nil {
		log.Warn().Err(err).Str("dir", cfg.MessagesDir).Msg("Messages directory is not readable yet")
	}
	log.Info().
		Str("dir", cfg.MessagesDir).
		Strs("locales", cfg.Locales).
		Str("default_locale", cfg.DefaultLocale).
		Msg("Site initialized")

	return &SiteComponents{
		Store:      store,
		Resolver:   resolver,
		Negotiator: i18n.NewNegotiator(cfg.Locales, cfg.DefaultLocale),
		Renderer:   renderer,
	}, nil
}
