package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type PackingRepository interface {
	Insert(ctx context.Context, item *db_models.PackingItem) error
	GetByID(ctx context.Context, itemID uuid.UUID) (*db_models.PackingItem, error)
	SetPacked(ctx context.Context, itemID uuid.UUID, packed bool) error
	Delete(ctx context.Context, itemID uuid.UUID) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.PackingItem, error)
}

type packingRepository struct {
	db *gorm.DB
}

func NewPackingRepository(db *gorm.DB) PackingRepository {
	return &packingRepository{db: db}
}

func (r *packingRepository) Insert(ctx context.Context, item *db_models.PackingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *packingRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*db_models.PackingItem, error) {
	var item db_models.PackingItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *packingRepository) SetPacked(ctx context.Context, itemID uuid.UUID, packed bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PackingItem{}).
		Where("id = ?", itemID).
		Update("is_packed", packed).Error
}

func (r *packingRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.PackingItem{}, "id = ?", itemID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *packingRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.PackingItem, error) {
	var items []db_models.PackingItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
