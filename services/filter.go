package services

import (
	"strings"

	"Townplate/models"
)

// Predicate decides whether one catalog item survives a filter.
type Predicate func(models.CatalogItem) bool

// TextMatch builds a case-insensitive substring predicate over the item's
// searchable text fields (name, description, vendor). An empty or
// whitespace-only query matches every item.
func TextMatch(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return func(models.CatalogItem) bool { return true }
	}
	return func(item models.CatalogItem) bool {
		return strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Vendor), q)
	}
}

// Toggle builds a predicate that passes only items whose named attribute is
// present and true. A missing attribute fails the toggle rather than erroring,
// so adding toggles can only narrow a result set.
func Toggle(attr string) Predicate {
	return func(item models.CatalogItem) bool {
		return item.HasAttr(attr)
	}
}

// And composes any number of predicates with logical AND. With no operands it
// matches everything.
func And(preds ...Predicate) Predicate {
	return func(item models.CatalogItem) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// BuildFilter combines a free-text query with named toggles into one
// predicate. Unknown toggle names still compose; they simply fail every item
// that does not carry the attribute.
func BuildFilter(query string, toggles []string) Predicate {
	preds := make([]Predicate, 0, len(toggles)+1)
	preds = append(preds, TextMatch(query))
	for _, t := range toggles {
		preds = append(preds, Toggle(t))
	}
	return And(preds...)
}
