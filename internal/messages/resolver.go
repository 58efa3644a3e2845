// Package messages assembles the translation dictionary served for a locale.
//
// A dictionary is merged from three sources in a fixed order: the global file
// for the locale (flat, top level), then one file per page namespace, then
// one file per component namespace. Namespaces are discovered from the
// directory layout on every call; nothing is cached.
package messages

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/multilingual/internal/metrics"
)

// Namespace is one loaded page or component message file.
type Namespace struct {
	Category Category
	Name     string
	Result   LoadResult
}

// Resolver builds merged dictionaries for supported locales.
type Resolver struct {
	store   *Store
	locales LocaleSet
	logger  zerolog.Logger
}

// NewResolver creates a Resolver reading from store and accepting only the
// given locales.
func NewResolver(store *Store, locales LocaleSet, logger zerolog.Logger) *Resolver {
	return &Resolver{
		store:   store,
		locales: locales,
		logger:  logger,
	}
}

// WithLogger returns a copy of the resolver that logs to l, typically a
// request-scoped logger carrying the request id.
func (r *Resolver) WithLogger(l zerolog.Logger) *Resolver {
	cp := *r
	cp.logger = l
	return &cp
}

// Locales returns the supported locale set.
func (r *Resolver) Locales() LocaleSet {
	return r.locales
}

// Resolve returns the merged dictionary for locale. The only error it returns
// wraps ErrLocaleNotFound; unreadable or malformed files degrade to empty
// namespaces and are logged as warnings.
func (r *Resolver) Resolve(locale string) (Dictionary, error) {
	start := time.Now()

	if !r.locales.Contains(locale) {
		r.logger.Error().Str("locale", locale).Msg("Invalid locale")
		metrics.RecordResolution(time.Since(start), "invalid", "not_found")
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}

	log := r.logger.With().Str("locale", locale).Logger()

	global := r.store.Load(CategoryGlobal.FilePath("", locale))
	metrics.RecordFileLoad(string(CategoryGlobal), global.OK())

	var namespaces []Namespace
	for _, category := range []Category{CategoryPages, CategoryComponents} {
		for _, name := range r.discover(log, category) {
			result := r.store.Load(category.FilePath(name, locale))
			metrics.RecordFileLoad(string(category), result.OK())
			namespaces = append(namespaces, Namespace{Category: category, Name: name, Result: result})
		}
	}

	dict := Merge(log, global, namespaces)

	metrics.RecordResolution(time.Since(start), locale, "success")
	log.Debug().
		Int("global_keys", len(dict.GlobalKeys())).
		Strs("namespaces", dict.Namespaces()).
		Dur("duration", time.Since(start)).
		Msg("Messages loaded")

	return dict, nil
}

// discover lists a category's namespaces, treating an unreadable root as empty.
func (r *Resolver) discover(log zerolog.Logger, category Category) []string {
	names, err := r.store.Discover(category)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("category", string(category)).Msg("No namespace directory")
		} else {
			log.Warn().Err(err).Str("category", string(category)).Msg("Could not list namespaces")
		}
		return nil
	}
	return names
}

// Merge folds loaded files into a dictionary. Global entries go to the top
// level; each namespace is stored under its name in slice order, so a later
// namespace replaces an earlier one with the same name (and any global entry
// with that key). Failed loads become empty namespaces and are logged.
func Merge(log zerolog.Logger, global LoadResult, namespaces []Namespace) Dictionary {
	dict := make(Dictionary, len(namespaces))

	if global.OK() {
		for k, v := range global.Messages {
			dict[k] = v
		}
	} else {
		warnLoad(log, global)
	}

	for _, ns := range namespaces {
		if _, exists := dict[ns.Name]; exists {
			log.Warn().
				Str("namespace", ns.Name).
				Str("category", string(ns.Category)).
				Msg("Namespace overrides an earlier entry")
		}
		if !ns.Result.OK() {
			warnLoad(log, ns.Result)
			dict[ns.Name] = Messages{}
			continue
		}
		if ns.Result.Messages == nil {
			dict[ns.Name] = Messages{}
			continue
		}
		dict[ns.Name] = ns.Result.Messages
	}

	return dict
}

func warnLoad(log zerolog.Logger, r LoadResult) {
	log.Warn().Err(r.Err).Str("path", r.Path).Msg("Could not load messages")
}
