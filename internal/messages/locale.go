package messages

import (
	"errors"
	"slices"
)

// ErrLocaleNotFound is returned by Resolve when the requested locale is not
// part of the supported set. Callers render a not-found response for it.
var ErrLocaleNotFound = errors.New("locale not found")

// LocaleSet is the closed set of locales the site serves. Order is preserved
// so the first entry can act as a default and UI switchers list them stably.
type LocaleSet []string

// NewLocaleSet builds a LocaleSet, dropping empty values and duplicates.
func NewLocaleSet(locales ...string) LocaleSet {
	set := make(LocaleSet, 0, len(locales))
	for _, l := range locales {
		if l == "" || slices.Contains(set, l) {
			continue
		}
		set = append(set, l)
	}
	return set
}

// Contains reports whether locale is a member of the set. Matching is exact.
func (s LocaleSet) Contains(locale string) bool {
	return slices.Contains(s, locale)
}
