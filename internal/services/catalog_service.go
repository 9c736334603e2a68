package services

import (
	"context"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCities(ctx context.Context) ([]string, error)
	ListAttractions(ctx context.Context, city, category string) ([]response_models.AttractionResponse, error)
}

type CatalogService struct {
	attractionRepo repositories.AttractionRepository
}

func NewCatalogService(attractionRepo repositories.AttractionRepository) CatalogServiceInterface {
	return &CatalogService{attractionRepo: attractionRepo}
}

func (s *CatalogService) ListCities(ctx context.Context) ([]string, error) {
	cities, err := s.attractionRepo.ListCities(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cities, nil
}

func (s *CatalogService) ListAttractions(ctx context.Context, city, category string) ([]response_models.AttractionResponse, error) {
	var (
		attractions []db_models.Attraction
		err         error
	)
	if category != "" {
		attractions, err = s.attractionRepo.ListByCityAndCategory(ctx, city, category)
	} else {
		attractions, err = s.attractionRepo.ListByCity(ctx, city)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, response_models.AttractionResponse{
			ID:            a.ID.String(),
			City:          a.City,
			Name:          a.Name,
			Category:      a.Category,
			DurationHours: a.DurationHours,
			Lat:           a.Lat,
			Lon:           a.Lon,
			ImagePath:     a.ImagePath,
		})
	}
	return out, nil
}
