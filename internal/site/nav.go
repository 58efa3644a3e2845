package site

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/multilingual/internal/messages"
)

// NavItem is one entry of the navbar menu.
type NavItem struct {
	Href  string
	Label string
}

// LanguageLink points the current page at another locale.
type LanguageLink struct {
	Locale string
	Label  string
	Href   string
	Active bool
}

// ThemeToggle is the navbar link switching to the other theme.
type ThemeToggle struct {
	Href  string
	Label string
}

// navKeys are the navbar namespace keys and the paths they link to.
var navKeys = []struct {
	key  string
	path string
}{
	{"home", "/"},
	{"about", "/about"},
	{"services", "/services"},
	{"contact", "/contact"},
	{"testimonials", "/testimonials"},
}

// LocalePath prefixes p with locale: LocalePath("et", "/about") is
// "/et/about" and LocalePath("et", "/") is "/et/".
func LocalePath(locale, p string) string {
	if p == "" || p == "/" {
		return "/" + locale + "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "/" + locale + p
}

// SwitchLocale replaces the leading locale segment of p with locale. Paths
// without a leading supported locale get locale prepended.
func SwitchLocale(p, locale string, supported []string) string {
	trimmed := strings.TrimPrefix(p, "/")
	first, rest, _ := strings.Cut(trimmed, "/")
	for _, l := range supported {
		if first == l {
			return "/" + locale + "/" + rest
		}
	}
	return LocalePath(locale, p)
}

// Chrome builds the navbar and footer data shared by every page.
type Chrome struct {
	// Locales lists the supported locales in switcher order.
	Locales []string
	// LanguageLabel returns the display name of a locale.
	LanguageLabel func(locale string) string
	// ToggleLabel returns the theme toggle caption for a locale.
	ToggleLabel func(locale string) string
	// Now returns the current time, for the copyright year.
	Now func() time.Time
}

// Data assembles template data for r, rendered in locale with the page
// messages under namespace.
func (ch Chrome) Data(r *http.Request, locale, namespace string, dict messages.Dictionary) Data {
	nav := make([]NavItem, 0, len(navKeys))
	for _, item := range navKeys {
		nav = append(nav, NavItem{
			Href:  LocalePath(locale, item.path),
			Label: dict.Lookup("navbar", item.key),
		})
	}

	p := "/"
	if r != nil && r.URL != nil {
		p = r.URL.Path
	}

	langs := make([]LanguageLink, 0, len(ch.Locales))
	for _, l := range ch.Locales {
		label := strings.ToUpper(l)
		if ch.LanguageLabel != nil {
			label = ch.LanguageLabel(l)
		}
		langs = append(langs, LanguageLink{
			Locale: l,
			Label:  label,
			Href:   SwitchLocale(p, l, ch.Locales),
			Active: l == locale,
		})
	}

	theme := ThemeFromRequest(r)
	toggle := ThemeToggle{Href: ThemeSwitchPath(theme.Opposite(), p)}
	if ch.ToggleLabel != nil {
		toggle.Label = ch.ToggleLabel(locale)
	}

	now := time.Now
	if ch.Now != nil {
		now = ch.Now
	}

	return Data{
		Locale:    locale,
		Theme:     theme,
		Messages:  dict,
		Namespace: namespace,
		Nav:       nav,
		Languages: langs,
		Toggle:    toggle,
		Year:      now().Year(),
	}
}

// ThemeSwitchPath is the URL of the theme endpoint switching to theme and
// returning to next.
func ThemeSwitchPath(theme Theme, next string) string {
	q := url.Values{}
	q.Set("to", string(theme))
	q.Set("next", next)
	return ThemeRoute + "?" + q.Encode()
}
