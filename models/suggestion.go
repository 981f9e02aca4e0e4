package models

// SuggestionRecord is one validated dish suggestion produced by the
// recommendation pipeline. Both fields are required; records are never built
// from an unvalidated model response.
type SuggestionRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Suggestion pairs a validated record with the canonical search route that a
// manual search for the same name would produce.
type Suggestion struct {
	SuggestionRecord
	Route string `json:"route"`
}
