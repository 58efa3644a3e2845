package site

import (
	"net/http"
	"strings"
)

// Theme is the colour scheme applied to the html element.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	// ThemeCookie stores the visitor's theme.
	ThemeCookie = "theme"
	// ThemeRoute switches the theme and redirects back.
	ThemeRoute = "/theme"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromRequest reads the theme cookie, defaulting to light.
func ThemeFromRequest(r *http.Request) Theme {
	if r == nil {
		return ThemeLight
	}
	cookie, err := r.Cookie(ThemeCookie)
	if err != nil {
		return ThemeLight
	}
	if t, ok := ParseTheme(cookie.Value); ok {
		return t
	}
	return ThemeLight
}

// SafeRedirect returns next when it is a path on this site and "/"
// otherwise, so the theme endpoint cannot bounce visitors elsewhere.
func SafeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
