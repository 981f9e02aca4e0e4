package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"Townplate/models"
	"Townplate/services"
	"Townplate/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		CatalogService: services.NewCatalogService(),
	}
}

// locationFromQuery builds the delivery location from query parameters.
// Latitude and longitude are optional and only narrow the services vertical.
func locationFromQuery(c *gin.Context) (models.Location, bool) {
	city := c.Query("city")
	if city == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "City is required")
		return models.Location{}, false
	}

	loc := models.Location{
		City:           city,
		CurrencySymbol: c.DefaultQuery("currency", "$"),
	}
	if latStr := c.Query("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
			return models.Location{}, false
		}
		loc.Latitude = lat
	}
	if lngStr := c.Query("longitude"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
			return models.Location{}, false
		}
		loc.Longitude = lng
	}
	return loc, true
}

func togglesFromQuery(c *gin.Context) []string {
	raw := c.Query("toggles")
	if raw == "" {
		return nil
	}
	var toggles []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			toggles = append(toggles, t)
		}
	}
	return toggles
}

// GetCatalogView returns the grouped, filtered carousels for one vertical.
func (ctl *CatalogController) GetCatalogView(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	kind := models.CatalogKind(c.Param("kind"))
	view, err := ctl.CatalogService.View(c.Request.Context(), kind, loc, c.Query("q"), togglesFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Catalog fetched successfully", view)
}

// GetCatalogItems returns the flat filtered item list for one vertical.
func (ctl *CatalogController) GetCatalogItems(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	kind := models.CatalogKind(c.Param("kind"))
	items, err := ctl.CatalogService.Items(c.Request.Context(), kind, loc, c.Query("q"), togglesFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Items fetched successfully", items)
}

// GetRoute resolves a navigation intent to its canonical route string.
func (ctl *CatalogController) GetRoute(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Intent kind is required")
		return
	}

	route := services.Route(services.IntentKind(kind), c.Query("payload"))
	utils.SuccessResponse(c, http.StatusOK, "Route built successfully", gin.H{"route": route})
}
