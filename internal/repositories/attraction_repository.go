package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type AttractionRepository interface {
	ListByCity(ctx context.Context, city string) ([]db_models.Attraction, error)
	ListByCityAndCategory(ctx context.Context, city, category string) ([]db_models.Attraction, error)
	ListCities(ctx context.Context) ([]string, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

// ListByCity returns the city's catalog in catalog order, which is the
// order the planner's tie-break is defined against.
func (r *attractionRepository) ListByCity(ctx context.Context, city string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("catalog_order").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByCityAndCategory(ctx context.Context, city, category string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("city = ? AND category = ?", city, category).
		Order("catalog_order").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListCities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Attraction{}).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *attractionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if len(ids) == 0 {
		return map[uuid.UUID]db_models.Attraction{}, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]db_models.Attraction, len(attractions))
	for _, a := range attractions {
		out[a.ID] = a
	}
	return out, nil
}
