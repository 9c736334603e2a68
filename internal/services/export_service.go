package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

type ExportServiceInterface interface {
	// RenderItineraryPDF builds the printable itinerary and returns the
	// document bytes together with a download file name.
	RenderItineraryPDF(ctx context.Context, accountID, tripID uuid.UUID) ([]byte, string, error)
}

type ExportService struct {
	tripService TripServiceInterface
}

func NewExportService(tripService TripServiceInterface) ExportServiceInterface {
	return &ExportService{tripService: tripService}
}

func (s *ExportService) RenderItineraryPDF(ctx context.Context, accountID, tripID uuid.UUID) ([]byte, string, error) {
	detail, err := s.tripService.GetTripDetail(ctx, accountID, tripID)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(13, 13, 13)
	pdf.AddPage()

	trip := detail.Trip
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Trip Itinerary: "+trip.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	for _, line := range []string{
		"City: " + trip.City,
		"Start Date: " + trip.StartDate,
		fmt.Sprintf("Days: %d", trip.Days),
		"Interests: " + orDash(trip.Interests),
	} {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// One page per day, matching the printed handout layout.
	for _, group := range detail.DayGroups {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.CellFormat(0, 9, fmt.Sprintf("Day %d", group.Day), "", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 11)
		if len(group.Items) == 0 {
			pdf.CellFormat(0, 6, "No activities planned for this day.", "", 1, "L", false, 0, "")
		}
		for _, item := range group.Items {
			line := fmt.Sprintf("- %s (%s - %s) - %s (%.1fh)",
				item.Name, item.StartTime, item.EndTime, item.Category, item.DurationHours)
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, "Map Snapshot", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "Open the trip in the web application for the interactive map of this itinerary.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render itinerary pdf: %w", err)
	}

	return buf.Bytes(), trip.Name + "_itinerary.pdf", nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
