package controllers

import (
	"net/http"

	"Townplate/services"
	"Townplate/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		ProductService: services.NewProductService(),
	}
}

// GetProductByBarcode returns the OpenFoodFacts enrichment for one grocery
// item. Service failures flow to the global error middleware.
func (ctl *ProductController) GetProductByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Barcode is required")
		return
	}

	detail, err := ctl.ProductService.GetProductByBarcode(barcode)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product fetched successfully", detail)
}
