package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"Townplate/models"
	"Townplate/utils"

	"go.uber.org/zap"
)

// Pipeline error taxonomy. Transport and invalid-response failures surface to
// the user as the same generic retryable message but stay distinguishable for
// logging and tests.
var (
	ErrEmptyPrompt     = errors.New("prompt is empty")
	ErrTransport       = errors.New("recommendation call failed")
	ErrInvalidResponse = errors.New("recommendation response is not valid")
	ErrSuperseded      = errors.New("recommendation request superseded")
)

// GenericSuggestionError is the single user-facing message for both pipeline
// failure modes.
const GenericSuggestionError = "Couldn't fetch suggestions right now, please try again"

// RecommendationClient is the external generative collaborator. It receives
// the craving prompt and returns raw text expected, but never trusted, to be
// schema-conformant JSON.
type RecommendationClient interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// RecommendationService turns free-text cravings into validated, navigable
// dish suggestions. Only the most recently submitted prompt may commit
// results; submitting again immediately clears whatever was displayed so
// stale and fresh suggestions are never shown together.
type RecommendationService struct {
	mu      sync.Mutex
	client  RecommendationClient
	logger  *zap.Logger
	seq     uint64
	current []models.Suggestion
}

// NewRecommendationService initializes the pipeline with the OpenAI-backed
// collaborator.
func NewRecommendationService() *RecommendationService {
	return NewRecommendationServiceWith(NewOpenAIClient(), utils.Logger)
}

// NewRecommendationServiceWith wires an explicit collaborator, used by tests.
func NewRecommendationServiceWith(client RecommendationClient, logger *zap.Logger) *RecommendationService {
	if logger == nil {
		logger = utils.Logger
	}
	return &RecommendationService{client: client, logger: logger}
}

// Suggest runs one prompt through the pipeline. Whitespace-only prompts are
// rejected before any external call. A submission that was superseded while
// in flight returns ErrSuperseded and leaves the newer request's state alone.
func (s *RecommendationService) Suggest(ctx context.Context, prompt string) ([]models.Suggestion, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	s.mu.Lock()
	s.seq++
	mine := s.seq
	s.current = nil // clear displayed results before the new call resolves
	s.mu.Unlock()

	raw, err := s.client.Suggest(ctx, prompt)
	if err != nil {
		s.logger.Warn("recommendation transport failure", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	records, err := parseSuggestions(raw)
	if err != nil {
		s.logger.Warn("recommendation response rejected", zap.Error(err))
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(records))
	for _, rec := range records {
		suggestions = append(suggestions, models.Suggestion{
			SuggestionRecord: rec,
			Route:            SearchRoute(rec.Name),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != mine {
		return nil, ErrSuperseded
	}
	s.current = suggestions
	return suggestions, nil
}

// Current returns the suggestions of the latest completed request, nil while
// a request is pending or after a failure.
func (s *RecommendationService) Current() []models.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// parseSuggestions validates the collaborator's raw output. Accepted shapes
// are a bare JSON array of {name, description} objects or that same array
// wrapped in a {"suggestions": [...]} object (the strict response-format
// wrapper). Anything else, including records missing either required string
// field, is an invalid response. The prompt asks for three suggestions but
// any validated count is accepted.
func parseSuggestions(raw string) ([]models.SuggestionRecord, error) {
	raw = strings.TrimSpace(stripCodeFence(raw))

	var records []models.SuggestionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		var wrapper struct {
			Suggestions []models.SuggestionRecord `json:"suggestions"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapper); err != nil || wrapper.Suggestions == nil {
			return nil, fmt.Errorf("%w: expected a JSON array of suggestions", ErrInvalidResponse)
		}
		records = wrapper.Suggestions
	}

	for i, rec := range records {
		if rec.Name == "" || rec.Description == "" {
			return nil, fmt.Errorf("%w: record %d is missing a required field", ErrInvalidResponse, i)
		}
	}
	return records, nil
}

// stripCodeFence removes markdown fences some models wrap JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return s
}
