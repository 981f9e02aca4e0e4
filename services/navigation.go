package services

import (
	"net/url"
	"strings"

	"Townplate/models"
)

// IntentKind names a discrete navigable user action.
type IntentKind string

const (
	IntentSearch       IntentKind = "search"
	IntentSuggestion   IntentKind = "suggestion"
	IntentCategoryAll  IntentKind = "category_all"
	IntentCategoryTile IntentKind = "category_tile"
)

// SearchRoute builds the canonical search deep link for a query term.
func SearchRoute(query string) string {
	return "#/search?q=" + encodeComponent(query)
}

// CategoryRoute builds the canonical "see all" deep link for a category.
func CategoryRoute(category string) string {
	return "#/category?c=" + encodeComponent(category)
}

// VerticalRoute builds the canonical deep link for a vertical tile.
func VerticalRoute(kind models.CatalogKind) string {
	return "#/vertical/" + encodeComponent(string(kind))
}

// Route maps a user action to its canonical route string. A suggestion click
// resolves to exactly the route a manual search for the suggestion name would
// produce. Construction is pure; performing the navigation is the caller's
// side effect.
func Route(kind IntentKind, payload string) string {
	switch kind {
	case IntentSearch, IntentSuggestion:
		return SearchRoute(payload)
	case IntentCategoryAll:
		return CategoryRoute(payload)
	case IntentCategoryTile:
		return VerticalRoute(models.CatalogKind(payload))
	default:
		return "#/"
	}
}

// encodeComponent percent-encodes a route component exactly once. A payload
// is treated as already encoded only when it is exactly the encoder's own
// output for its decoded form, so re-encoding an encoded value is a no-op
// while a literal percent sign that merely resembles an escape still gets
// escaped. Spaces encode as %20, not +.
func encodeComponent(s string) string {
	if strings.Contains(s, "%") {
		if decoded, err := url.QueryUnescape(s); err == nil && encodeRaw(decoded) == s {
			return s
		}
	}
	return encodeRaw(s)
}

func encodeRaw(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
