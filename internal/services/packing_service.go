package services

import (
	"context"

	"github.com/google/uuid"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type PackingServiceInterface interface {
	AddItem(ctx context.Context, accountID, tripID uuid.UUID, itemName string) (*response_models.PackingItemResponse, error)
	ToggleItem(ctx context.Context, accountID, itemID uuid.UUID) (*response_models.PackingItemResponse, error)
	DeleteItem(ctx context.Context, accountID, itemID uuid.UUID) error
}

type PackingService struct {
	packingRepo repositories.PackingRepository
	tripRepo    repositories.TripRepository
}

func NewPackingService(packingRepo repositories.PackingRepository, tripRepo repositories.TripRepository) PackingServiceInterface {
	return &PackingService{
		packingRepo: packingRepo,
		tripRepo:    tripRepo,
	}
}

func (s *PackingService) AddItem(ctx context.Context, accountID, tripID uuid.UUID, itemName string) (*response_models.PackingItemResponse, error) {
	trip, err := s.tripRepo.GetByIDForAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	item := &db_models.PackingItem{
		TripID:   trip.ID,
		ItemName: itemName,
	}
	if err := s.packingRepo.Insert(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PackingItemResponse{
		ID:       item.ID.String(),
		ItemName: item.ItemName,
		IsPacked: item.IsPacked,
	}, nil
}

// ToggleItem flips the packed flag. Toggling twice restores the original
// state.
func (s *PackingService) ToggleItem(ctx context.Context, accountID, itemID uuid.UUID) (*response_models.PackingItemResponse, error) {
	item, err := s.ownedItem(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.packingRepo.SetPacked(ctx, item.ID, !item.IsPacked); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PackingItemResponse{
		ID:       item.ID.String(),
		ItemName: item.ItemName,
		IsPacked: !item.IsPacked,
	}, nil
}

func (s *PackingService) DeleteItem(ctx context.Context, accountID, itemID uuid.UUID) error {
	item, err := s.ownedItem(ctx, accountID, itemID)
	if err != nil {
		return err
	}
	if err := s.packingRepo.Delete(ctx, item.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ownedItem resolves the item and verifies the parent trip belongs to the
// caller. Items on someone else's trip surface as not-found.
func (s *PackingService) ownedItem(ctx context.Context, accountID, itemID uuid.UUID) (*db_models.PackingItem, error) {
	item, err := s.packingRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrPackingItemNotFound
	}

	trip, err := s.tripRepo.GetByIDForAccount(ctx, item.TripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrPackingItemNotFound
	}
	return item, nil
}
