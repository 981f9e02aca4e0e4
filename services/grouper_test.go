package services

import (
	"testing"

	"Townplate/models"
)

func item(id, name, category string) models.CatalogItem {
	return models.CatalogItem{ID: id, Name: name, Category: category}
}

func TestGroupByCategory(t *testing.T) {
	t.Run("groups in first-occurrence order", func(t *testing.T) {
		items := []models.CatalogItem{
			item("1", "Chips", "Snacks"),
			item("2", "Milk", "Dairy"),
			item("3", "Pretzels", "Snacks"),
		}

		groups := GroupByCategory(items)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Category != "Snacks" || len(groups[0].Items) != 2 {
			t.Errorf("expected first group Snacks with 2 items, got %q with %d", groups[0].Category, len(groups[0].Items))
		}
		if groups[1].Category != "Dairy" || len(groups[1].Items) != 1 {
			t.Errorf("expected second group Dairy with 1 item, got %q with %d", groups[1].Category, len(groups[1].Items))
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		if groups := GroupByCategory(nil); len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("concatenation is an order-stable partition of the input", func(t *testing.T) {
		items := []models.CatalogItem{
			item("1", "a", "X"),
			item("2", "b", "Y"),
			item("3", "c", "X"),
			item("4", "d", "Z"),
			item("5", "e", "Y"),
			item("6", "f", "X"),
		}

		groups := GroupByCategory(items)

		var flat []models.CatalogItem
		for _, g := range groups {
			flat = append(flat, g.Items...)
		}
		if len(flat) != len(items) {
			t.Fatalf("expected %d items after grouping, got %d", len(items), len(flat))
		}

		// Every item appears exactly once, and within each category the
		// original relative order is preserved.
		seen := make(map[string]bool)
		lastIndex := make(map[string]int)
		position := func(id string) int {
			for i, it := range items {
				if it.ID == id {
					return i
				}
			}
			t.Fatalf("unexpected item %q in output", id)
			return -1
		}
		for _, it := range flat {
			if seen[it.ID] {
				t.Fatalf("item %q emitted twice", it.ID)
			}
			seen[it.ID] = true
			pos := position(it.ID)
			if last, ok := lastIndex[it.Category]; ok && pos < last {
				t.Errorf("item %q out of order within category %q", it.ID, it.Category)
			}
			lastIndex[it.Category] = pos
		}
	})

	t.Run("category match is byte-exact", func(t *testing.T) {
		items := []models.CatalogItem{
			item("1", "a", "Snacks"),
			item("2", "b", "snacks"),
			item("3", "c", "Snacks "),
		}

		groups := GroupByCategory(items)

		if len(groups) != 3 {
			t.Errorf("expected 3 distinct groups for case/whitespace variants, got %d", len(groups))
		}
	})
}

func TestFilterGroups(t *testing.T) {
	groups := GroupByCategory([]models.CatalogItem{
		item("1", "Chips", "Snacks"),
		item("2", "Milk", "Dairy"),
		item("3", "Pretzels", "Snacks"),
	})

	t.Run("drops groups left empty", func(t *testing.T) {
		filtered := FilterGroups(groups, TextMatch("milk"))

		if len(filtered) != 1 {
			t.Fatalf("expected 1 group, got %d", len(filtered))
		}
		if filtered[0].Category != "Dairy" {
			t.Errorf("expected Dairy to survive, got %q", filtered[0].Category)
		}
	})

	t.Run("keeps section order", func(t *testing.T) {
		filtered := FilterGroups(groups, func(models.CatalogItem) bool { return true })

		if len(filtered) != 2 || filtered[0].Category != "Snacks" || filtered[1].Category != "Dairy" {
			t.Errorf("expected [Snacks Dairy], got %+v", filtered)
		}
	})
}
