package handlers

import (
	"Townplate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(router *gin.RouterGroup, productController *controllers.ProductController) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("/:barcode", productController.GetProductByBarcode)
	}
}
