package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type TripRepository interface {
	// CreateWithItems persists the trip and its full itinerary in one
	// transaction, so a failed planning run leaves no orphan trip behind.
	CreateWithItems(ctx context.Context, trip *db_models.Trip, items []db_models.TripItem) error

	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Trip, error)
	GetByIDForAccount(ctx context.Context, tripID, accountID uuid.UUID) (*db_models.Trip, error)
	ListItems(ctx context.Context, tripID uuid.UUID) ([]db_models.TripItem, error)

	// DeleteCascade removes the trip together with its itinerary and
	// packing items atomically.
	DeleteCascade(ctx context.Context, tripID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateWithItems(ctx context.Context, trip *db_models.Trip, items []db_models.TripItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].TripID = trip.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetByIDForAccount(ctx context.Context, tripID, accountID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		First(&trip, "id = ? AND account_id = ?", tripID, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListItems(ctx context.Context, tripID uuid.UUID) ([]db_models.TripItem, error) {
	var items []db_models.TripItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day, order_index").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *tripRepository) DeleteCascade(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.TripItem{}, "trip_id = ?", tripID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.PackingItem{}, "trip_id = ?", tripID).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Trip{}, "id = ?", tripID).Error
	})
}
