package packing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	providePackingService, providePackingRepo)

func providePackingRepo(db *gorm.DB) repositories.PackingRepository {
	return repositories.NewPackingRepository(db)
}

func providePackingService(packingRepo repositories.PackingRepository, tripRepo repositories.TripRepository) services.PackingServiceInterface {
	return services.NewPackingService(packingRepo, tripRepo)
}
