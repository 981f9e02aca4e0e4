package services

import "Townplate/models"

// GroupByCategory partitions a flat item list into ordered category sections.
// The category string is the grouping key verbatim: no case folding, no
// trimming. Group order follows the first occurrence of each category in the
// input; item order inside a group follows the input order. Empty input yields
// an empty result.
func GroupByCategory(items []models.CatalogItem) []models.CategoryGroup {
	var groups []models.CategoryGroup
	index := make(map[string]int)

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			index[item.Category] = len(groups)
			groups = append(groups, models.CategoryGroup{Category: item.Category})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// FilterGroups applies keep to every item and re-emits the sections, dropping
// any group left without items. Section and item order are preserved.
func FilterGroups(groups []models.CategoryGroup, keep Predicate) []models.CategoryGroup {
	var out []models.CategoryGroup
	for _, g := range groups {
		var items []models.CatalogItem
		for _, item := range g.Items {
			if keep(item) {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			out = append(out, models.CategoryGroup{Category: g.Category, Items: items})
		}
	}
	return out
}
