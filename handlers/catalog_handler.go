package handlers

import (
	"Townplate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.RouterGroup, catalogController *controllers.CatalogController) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/:kind", catalogController.GetCatalogView)
		catalogGroup.GET("/:kind/items", catalogController.GetCatalogItems)
	}
	router.GET("/routes", catalogController.GetRoute)
}
