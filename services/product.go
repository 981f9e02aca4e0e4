package services

import (
	"net/http"

	"Townplate/utils"

	"github.com/openfoodfacts/openfoodfacts-go"
	"go.uber.org/zap"
)

// ProductService enriches grocery catalog entries with OpenFoodFacts data.
type ProductService struct {
	Client openfoodfacts.Client
	logger *zap.Logger
}

// NewProductService initializes a new instance of ProductService.
func NewProductService() *ProductService {
	client := openfoodfacts.NewClient("world", "", "")
	return &ProductService{Client: client, logger: utils.Logger}
}

// ProductDetail is the structured detail shown on a grocery item page.
type ProductDetail struct {
	Name            string   `json:"name"`
	Brands          string   `json:"brands"`
	IngredientsText string   `json:"ingredients_text"`
	IngredientsTags []string `json:"ingredients_tags"`
	Quantity        string   `json:"quantity"`
}

// GetProductByBarcode fetches product details using a barcode. The returned
// errors carry their HTTP status for the global error middleware.
func (s *ProductService) GetProductByBarcode(barcode string) (*ProductDetail, error) {
	product, err := s.Client.Product(barcode)
	if err != nil {
		s.logger.Warn("product lookup failed", zap.String("barcode", barcode), zap.Error(err))
		return nil, utils.NewCustomError(http.StatusBadGateway, "Product lookup failed")
	}

	if product.ProductName == "" && product.IngredientsText == "" {
		return nil, utils.NewCustomError(http.StatusNotFound, "Product not found")
	}

	return &ProductDetail{
		Name:            product.ProductName,
		Brands:          product.Brands,
		IngredientsText: product.IngredientsText,
		IngredientsTags: product.IngredientsTags,
		Quantity:        product.Quantity,
	}, nil
}
