// Package router reconciles URL path, URL hash, deployment base path, and the
// persisted locale preference into one canonical (Route, Locale) navigation
// state, and builds the inverse URL strings.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/wchklaus97/remind-me/internal/i18n"
	"github.com/wchklaus97/remind-me/internal/storage"
)

// Route is a navigable page. Any route is reachable from any other; this is
// navigation, not a workflow.
type Route string

const (
	RouteLanding       Route = "landing"
	RouteApp           Route = "app"
	RoutePrivacyPolicy Route = "privacy"
	RouteTermsOfUse    Route = "terms"
)

// ParseRoute maps a route token to a Route, defaulting to the landing page.
func ParseRoute(s string) Route {
	switch s {
	case string(RouteApp):
		return RouteApp
	case string(RoutePrivacyPolicy):
		return RoutePrivacyPolicy
	case string(RouteTermsOfUse):
		return RouteTermsOfUse
	default:
		return RouteLanding
	}
}

// HostingMode selects the URL style Build produces. Static-file hosting needs
// hash URLs so deep links never 404; server-routed hosting can use real paths.
type HostingMode string

const (
	HostingPath HostingMode = "path"
	HostingHash HostingMode = "hash"
)

// isLocaleToken reports whether a path segment is a locale prefix: "en",
// "zh", or any "zh-*" variant.
func isLocaleToken(s string) bool {
	return s == "en" || s == "zh" || strings.HasPrefix(s, "zh-")
}

// stripBasePath removes a deployment-subdirectory prefix, if present.
func stripBasePath(path, basePath string) string {
	if basePath != "" && strings.HasPrefix(path, basePath) {
		return strings.TrimPrefix(path, basePath)
	}
	return path
}

// Parse resolves a path or hash string into a (Route, Locale) pair.
//
// The base path is stripped first, then the path is tokenized on "/". A
// leading locale token is consumed (bare "zh" normalizes to Simplified
// Chinese) and the next token selects the page; a missing or unrecognized
// page token means the landing page. Without a locale token the string is
// checked for the legacy bare "/app" or "#app" forms, which map to the app
// with the default locale. Everything else is (Landing, En).
func Parse(pathOrHash, basePath string) (Route, i18n.Locale) {
	path := strings.TrimPrefix(pathOrHash, "#")
	path = stripBasePath(path, basePath)

	var parts []string
	for _, p := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) > 0 && isLocaleToken(parts[0]) {
		locale := i18n.ParseLocale(parts[0])
		if len(parts) >= 2 {
			return ParseRoute(parts[1]), locale
		}
		return RouteLanding, locale
	}

	// Legacy bare paths without a locale prefix.
	if strings.Contains(pathOrHash, "/app") || strings.Contains(pathOrHash, "#app") {
		return RouteApp, i18n.DefaultLocale
	}

	return RouteLanding, i18n.DefaultLocale
}

// HasLocalePrefix reports whether a path carries an explicit locale token as
// its first segment. Initial resolution only trusts the pathname when this
// holds.
func HasLocalePrefix(path, basePath string) bool {
	path = strings.TrimPrefix(path, "#")
	path = stripBasePath(path, basePath)
	for _, p := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if p != "" {
			return isLocaleToken(p)
		}
	}
	return false
}

// Build produces the canonical URL string for a (Route, Locale) pair in the
// given hosting mode: "/{locale}/{page}" for path routing, the same string
// behind "#" for hash routing. The landing page keeps its trailing slash so
// built URLs match what Parse and static hosts expect.
func Build(route Route, locale i18n.Locale, mode HostingMode) string {
	var path string
	switch route {
	case RouteApp, RoutePrivacyPolicy, RouteTermsOfUse:
		path = fmt.Sprintf("/%s/%s", locale, route)
	default:
		path = fmt.Sprintf("/%s/", locale)
	}

	if mode == HostingHash {
		return "#" + path
	}
	return path
}

// ResolveInitial applies the startup precedence: a non-empty hash wins, the
// pathname counts only when it carries an explicit locale prefix, and
// otherwise the persisted locale preference is used with the landing page.
func ResolveInitial(ctx context.Context, pathname, hash, basePath string, store storage.Store) (Route, i18n.Locale) {
	if h := strings.TrimPrefix(hash, "#"); h != "" {
		return Parse(h, basePath)
	}

	if HasLocalePrefix(pathname, basePath) {
		return Parse(pathname, basePath)
	}

	if saved, ok := store.Get(ctx, storage.LocaleKey); ok {
		return RouteLanding, i18n.ParseLocale(saved)
	}

	return RouteLanding, i18n.DefaultLocale
}
