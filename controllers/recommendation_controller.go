package controllers

import (
	"errors"
	"net/http"

	"Townplate/services"
	"Townplate/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

func NewRecommendationController() *RecommendationController {
	return &RecommendationController{
		RecommendationService: services.NewRecommendationService(),
	}
}

// SuggestRequest represents the craving prompt payload.
type SuggestRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Suggest runs the craving prompt through the recommendation pipeline and
// returns validated suggestions with their search routes. Transport and
// invalid-response failures both map to the same retryable message.
func (ctl *RecommendationController) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	suggestions, err := ctl.RecommendationService.Suggest(c.Request.Context(), req.Prompt)
	switch {
	case err == nil:
		utils.SuccessResponse(c, http.StatusOK, "Suggestions fetched successfully", suggestions)
	case errors.Is(err, services.ErrEmptyPrompt):
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Prompt must not be empty"))
	case errors.Is(err, services.ErrSuperseded):
		c.Error(utils.NewCustomError(http.StatusConflict, "A newer request replaced this one"))
	default:
		c.Error(utils.NewCustomError(http.StatusBadGateway, services.GenericSuggestionError))
	}
}
