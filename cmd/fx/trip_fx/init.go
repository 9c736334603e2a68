package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	attractionRepo repositories.AttractionRepository,
	packingRepo repositories.PackingRepository,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, attractionRepo, packingRepo)
}
