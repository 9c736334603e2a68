package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCities godoc
// @Summary List catalog cities
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /catalog/cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	cities, err := cc.catalogService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// ListAttractions godoc
// @Summary List attractions for a city
// @Tags Catalog
// @Produce json
// @Param city path string true "City name"
// @Param category query string false "Category filter"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/attractions/{city} [get]
func (cc *CatalogController) ListAttractions(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}
	category := c.Query("category")

	attractions, err := cc.catalogService.ListAttractions(c.Request.Context(), city, category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}
