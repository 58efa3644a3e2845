package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyLocaleNotFound indicates an unsupported locale. Takes {{.Locale}}.
	ErrKeyLocaleNotFound = "error.locale_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
)

// Page chrome keys rendered outside the messages tree.
const (
	KeyNotFoundTitle = "page.not_found.title"
	KeyNotFoundBody  = "page.not_found.body"
	KeyNotFoundBack  = "page.not_found.back"
	KeyThemeToggle   = "theme.toggle"
)

// LanguageKey returns the key of a locale's display name, e.g. "language.et".
func LanguageKey(locale string) string {
	return "language." + locale
}
