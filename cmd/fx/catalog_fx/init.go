package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideAttractionRepo)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideCatalogService(attractionRepo repositories.AttractionRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(attractionRepo)
}
