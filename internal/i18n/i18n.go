// Package i18n provides locale negotiation and translation of server
// generated texts (error envelopes, the not-found page, language labels).
// Page copy is not handled here; it comes from the messages tree.
package i18n

import (
	"embed"
	"sync"

	"github.com/gin-gonic/gin"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/guttosm/multilingual/internal/logger"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator renders server generated texts from the embedded TOML catalogs.
type Translator struct {
	bundle *goi18n.Bundle
}

// NewTranslator creates a translator backed by the embedded catalogs.
// Catalogs that fail to load are logged and skipped.
func NewTranslator() *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := localeFS.ReadDir("locales")
	for _, f := range files {
		path := "locales/" + f.Name()
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			log := logger.Logger()
			log.Error().Err(err).Str("file", path).Msg("Failed to load translation catalog")
		}
	}

	return &Translator{bundle: bundle}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Languages returns the locales that have a catalog.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	return t.TranslateData(key, locale, nil)
}

// TranslateData is Translate with template data for placeholders.
func (t *Translator) TranslateData(key, locale string, data map[string]any) string {
	if key == "" {
		return ""
	}
	if locale == "" {
		locale = DefaultLocale
	}

	localizer := goi18n.NewLocalizer(t.bundle, locale, DefaultLocale)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}

// GetLocale returns the locale chosen for the request. It prefers the value
// stored by the Locale middleware and otherwise negotiates against the
// translator's catalogs from the cookie and Accept-Language header.
func GetLocale(c *gin.Context) string {
	if v, ok := c.Get(LocaleKey); ok {
		if locale, ok := v.(string); ok && locale != "" {
			return locale
		}
	}
	return defaultNegotiator().FromRequest(c.Request)
}

var (
	fallbackNegotiator     *Negotiator
	fallbackNegotiatorOnce sync.Once
)

func defaultNegotiator() *Negotiator {
	fallbackNegotiatorOnce.Do(func() {
		fallbackNegotiator = NewNegotiator(GetTranslator().Languages(), DefaultLocale)
	})
	return fallbackNegotiator
}
