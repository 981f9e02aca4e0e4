package route

import (
	"Townplate/controllers"
	"Townplate/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	catalogController := controllers.NewCatalogController()
	recommendationController := controllers.NewRecommendationController()
	bookingController := controllers.NewBookingController()
	productController := controllers.NewProductController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterCatalogRoutes(v1Routes, catalogController)
		handlers.RegisterRecommendationRoutes(v1Routes, recommendationController)
		handlers.RegisterBookingRoutes(v1Routes, bookingController)
		handlers.RegisterProductRoutes(v1Routes, productController)
	}
}
