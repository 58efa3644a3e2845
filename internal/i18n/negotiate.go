package i18n

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// LocaleCookie stores the visitor's last chosen locale.
	LocaleCookie = "locale"
	// LocaleParam is the route parameter carrying the locale prefix.
	LocaleParam = "locale"
	// LocaleKey is the gin context key holding the request locale.
	LocaleKey = "locale"
)

// Negotiator picks the best supported locale for a visitor.
type Negotiator struct {
	locales       []string
	defaultLocale string
	matcher       language.Matcher
}

// NewNegotiator builds a negotiator over the supported locales. The default
// locale is used whenever nothing matches; if it is not supported the first
// supported locale is used instead.
func NewNegotiator(locales []string, defaultLocale string) *Negotiator {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}
	if !slices.Contains(locales, defaultLocale) {
		defaultLocale = locales[0]
	}

	// The matcher falls back to its first tag, so the default goes first.
	ordered := make([]string, 0, len(locales))
	ordered = append(ordered, defaultLocale)
	for _, l := range locales {
		if l != defaultLocale {
			ordered = append(ordered, l)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		tags = append(tags, language.Make(l))
	}

	return &Negotiator{
		locales:       ordered,
		defaultLocale: defaultLocale,
		matcher:       language.NewMatcher(tags),
	}
}

// Default returns the fallback locale.
func (n *Negotiator) Default() string {
	return n.defaultLocale
}

// IsSupported reports whether locale is one of the supported values, exactly.
func (n *Negotiator) IsSupported(locale string) bool {
	return slices.Contains(n.locales, locale)
}

// Match returns the supported locale that best fits an Accept-Language
// style preference list such as "et-EE,et;q=0.9,en;q=0.8".
func (n *Negotiator) Match(acceptLanguage string) string {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return n.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return n.defaultLocale
	}
	_, idx, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return n.defaultLocale
	}
	return n.locales[idx]
}

// FromRequest negotiates a locale from the locale cookie, then the
// Accept-Language header.
func (n *Negotiator) FromRequest(r *http.Request) string {
	if r == nil {
		return n.defaultLocale
	}
	if cookie, err := r.Cookie(LocaleCookie); err == nil {
		if v := strings.ToLower(strings.TrimSpace(cookie.Value)); n.IsSupported(v) {
			return v
		}
	}
	return n.Match(r.Header.Get(AcceptLanguageHeader))
}

// Locale returns a middleware that stores the request locale under
// LocaleKey: the route's locale parameter when it is supported, otherwise
// the negotiated one. It never rejects a request; handlers decide what an
// unsupported prefix means.
func Locale(n *Negotiator) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param(LocaleParam)
		if !n.IsSupported(locale) {
			locale = n.FromRequest(c.Request)
		}
		c.Set(LocaleKey, locale)
		c.Next()
	}
}
