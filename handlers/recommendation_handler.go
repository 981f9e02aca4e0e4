package handlers

import (
	"Townplate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.RouterGroup, recommendationController *controllers.RecommendationController) {
	router.POST("/suggestions", recommendationController.Suggest)
}
