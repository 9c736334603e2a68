package export_fx

import (
	"go.uber.org/fx"

	"yatra/internal/services"
)

var Module = fx.Provide(
	provideExportService)

func provideExportService(tripService services.TripServiceInterface) services.ExportServiceInterface {
	return services.NewExportService(tripService)
}
