package services

import (
	"testing"

	"Townplate/models"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		kind     IntentKind
		payload  string
		expected string
	}{
		{name: "free search", kind: IntentSearch, payload: "Dan Dan Noodles", expected: "#/search?q=Dan%20Dan%20Noodles"},
		{name: "suggestion click matches manual search", kind: IntentSuggestion, payload: "Dan Dan Noodles", expected: "#/search?q=Dan%20Dan%20Noodles"},
		{name: "category see all", kind: IntentCategoryAll, payload: "Fresh Produce", expected: "#/category?c=Fresh%20Produce"},
		{name: "category tile", kind: IntentCategoryTile, payload: "grocery", expected: "#/vertical/grocery"},
		{name: "reserved characters", kind: IntentSearch, payload: "mac & cheese", expected: "#/search?q=mac%20%26%20cheese"},
		{name: "literal percent kept verbatim", kind: IntentSearch, payload: "a%41b", expected: "#/search?q=a%2541b"},
		{name: "unknown intent falls back to root", kind: IntentKind("bogus"), payload: "x", expected: "#/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Route(tt.kind, tt.payload); got != tt.expected {
				t.Errorf("Route(%q, %q) = %q, expected %q", tt.kind, tt.payload, got, tt.expected)
			}
		})
	}
}

func TestRouteEncodesExactlyOnce(t *testing.T) {
	payloads := []string{
		"Dan Dan Noodles",
		"mac & cheese",
		"café au lait",
		"50% off deal",
		"a%41b",
		"plain",
	}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			once := Route(IntentSearch, payload)
			// Feeding the already-encoded component back in must not
			// double-encode it.
			encoded := once[len("#/search?q="):]
			twice := Route(IntentSearch, encoded)
			if once != twice {
				t.Errorf("encoding is not idempotent: %q vs %q", once, twice)
			}
		})
	}
}

func TestVerticalRoute(t *testing.T) {
	if got := VerticalRoute(models.KindMedicine); got != "#/vertical/medicine" {
		t.Errorf("unexpected vertical route %q", got)
	}
}
