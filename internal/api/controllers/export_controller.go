package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// DownloadItinerary godoc
// @Summary Download the trip itinerary as a PDF
// @Tags Trips
// @Produce application/pdf
// @Param tripId path string true "Trip ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/export [get]
func (e *ExportController) DownloadItinerary(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	pdfBytes, fileName, err := e.exportService.RenderItineraryPDF(c.Request.Context(), accountID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
