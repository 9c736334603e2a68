package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// callerID pulls the authenticated account id the JWT middleware stored on
// the context.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

// CreateTrip godoc
// @Summary Create a trip and generate its itinerary
// @Description Creates the trip and plans a day-by-day itinerary in one step
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip parameters: "+err.Error())
		return
	}

	detail, err := t.tripService.CreateTrip(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip created successfully")
}

// ListTrips godoc
// @Summary List the caller's trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip with its day-by-day itinerary
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	detail, err := t.tripService.GetTripDetail(c.Request.Context(), accountID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip and everything attached to it
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), accountID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}
