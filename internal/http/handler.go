package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
	"github.com/guttosm/multilingual/internal/messages"
	"github.com/guttosm/multilingual/internal/middleware"
	"github.com/guttosm/multilingual/internal/site"
)

// cookieMaxAge keeps locale and theme preferences for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Handler serves the localized pages and the messages API.
type Handler struct {
	resolver   *messages.Resolver
	negotiator *i18n.Negotiator
	renderer   *site.Renderer
	chrome     site.Chrome
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithClock sets the clock used for the footer year.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.chrome.Now = now
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(resolver *messages.Resolver, negotiator *i18n.Negotiator, renderer *site.Renderer, opts ...HandlerOption) *Handler {
	translator := i18n.GetTranslator()

	h := &Handler{
		resolver:   resolver,
		negotiator: negotiator,
		renderer:   renderer,
		chrome: site.Chrome{
			Locales: resolver.Locales(),
			LanguageLabel: func(locale string) string {
				return translator.Translate(i18n.LanguageKey(locale), locale)
			},
			ToggleLabel: func(locale string) string {
				return translator.Translate(i18n.KeyThemeToggle, locale)
			},
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// resolve builds the dictionary for locale, logging through the request
// scoped logger.
func (h *Handler) resolve(c *gin.Context, locale string) (messages.Dictionary, error) {
	return h.resolver.WithLogger(middleware.Logger(c)).Resolve(locale)
}

// Root redirects / to the home page of the negotiated locale.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, site.LocalePath(h.negotiator.FromRequest(c.Request), "/"))
}

// LocaleRoot handles single segment paths. A supported locale is sent to its
// home page and a known page slug such as /about is sent to the negotiated
// locale's version of it. Anything else is not found.
func (h *Handler) LocaleRoot(c *gin.Context) {
	segment := c.Param(i18n.LocaleParam)

	if h.negotiator.IsSupported(segment) {
		c.Redirect(http.StatusTemporaryRedirect, site.LocalePath(segment, "/"))
		return
	}
	if page, ok := site.PageBySlug(segment); ok && page.Slug != "" {
		c.Redirect(http.StatusTemporaryRedirect, site.LocalePath(h.negotiator.FromRequest(c.Request), "/"+page.Slug))
		return
	}

	h.NotFound(c)
}

// Page returns the handler rendering page for the locale in the path.
func (h *Handler) Page(page site.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param(i18n.LocaleParam)

		dict, err := h.resolve(c, locale)
		if err != nil {
			h.NotFound(c)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(i18n.LocaleCookie, locale, cookieMaxAge, "/", "", false, true)
		c.Render(http.StatusOK, h.renderer.Instance(page.Template, h.chrome.Data(c.Request, locale, page.Namespace, dict)))
	}
}

// Messages handles GET /api/messages/:locale and returns the merged
// dictionary for the locale.
func (h *Handler) Messages(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := c.Param(i18n.LocaleParam)

	dict, err := h.resolve(c, locale)
	if err != nil {
		if errors.Is(err, messages.ErrLocaleNotFound) {
			builder.ErrorWithData(http.StatusNotFound, i18n.ErrKeyLocaleNotFound, map[string]any{"Locale": locale}, nil)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.MessagesPayload{Locale: locale, Messages: dict})
}

// SetTheme handles GET /theme?to=dark|light&next=/path. It stores the theme
// cookie and redirects back to next when next is a local path.
func (h *Handler) SetTheme(c *gin.Context) {
	theme, ok := site.ParseTheme(c.Query("to"))
	if !ok {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(site.ThemeCookie, string(theme), cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, site.SafeRedirect(c.Query("next")))
}

// NotFound answers unknown routes and unsupported locales: a JSON envelope
// under /api, the translated error page elsewhere.
func (h *Handler) NotFound(c *gin.Context) {
	if isAPI(c) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}
	h.errorPage(c, http.StatusNotFound, i18n.KeyNotFoundTitle, i18n.KeyNotFoundBody)
}

// Recover renders the response of a recovered panic.
func (h *Handler) Recover(c *gin.Context) {
	if isAPI(c) {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, nil)
		return
	}
	h.errorPage(c, http.StatusInternalServerError, i18n.ErrKeyInternalError, "")
}

// errorPage renders the error template in the locale of the path when it is
// supported, otherwise in the negotiated one.
func (h *Handler) errorPage(c *gin.Context, status int, titleKey, bodyKey string) {
	locale := h.pathLocale(c)
	translator := i18n.GetTranslator()

	dict, err := h.resolve(c, locale)
	if err != nil {
		dict = messages.Dictionary{}
	}

	data := h.chrome.Data(c.Request, locale, "", dict)
	data.Text = map[string]string{
		"title": translator.Translate(titleKey, locale),
		"body":  translator.Translate(bodyKey, locale),
		"back":  translator.Translate(i18n.KeyNotFoundBack, locale),
	}

	c.Abort()
	c.Render(status, h.renderer.Instance(site.TemplateError, data))
}

func (h *Handler) pathLocale(c *gin.Context) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(c.Request.URL.Path, "/"), "/")
	if h.negotiator.IsSupported(first) {
		return first
	}
	return i18n.GetLocale(c)
}

func isAPI(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
