package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type PackingController struct {
	packingService services.PackingServiceInterface
}

func NewPackingController(packingService services.PackingServiceInterface) *PackingController {
	return &PackingController{
		packingService: packingService,
	}
}

// AddItem godoc
// @Summary Add a packing item to a trip
// @Tags Packing
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddPackingItemRequest true "Item payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/packing [post]
func (p *PackingController) AddItem(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.AddPackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item name is required")
		return
	}

	item, err := p.packingService.AddItem(c.Request.Context(), accountID, tripID, req.ItemName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Packing item added")
}

// ToggleItem godoc
// @Summary Toggle the packed flag of a packing item
// @Tags Packing
// @Produce json
// @Param itemId path string true "Packing item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /packing/{itemId}/toggle [post]
func (p *PackingController) ToggleItem(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid packing item ID")
		return
	}

	item, err := p.packingService.ToggleItem(c.Request.Context(), accountID, itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Packing item updated")
}

// DeleteItem godoc
// @Summary Delete a packing item
// @Tags Packing
// @Produce json
// @Param itemId path string true "Packing item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /packing/{itemId} [delete]
func (p *PackingController) DeleteItem(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid packing item ID")
		return
	}

	if err := p.packingService.DeleteItem(c.Request.Context(), accountID, itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Packing item deleted")
}
