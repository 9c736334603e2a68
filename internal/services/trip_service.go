package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/planner"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	ListTrips(ctx context.Context, accountID uuid.UUID) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, accountID, tripID uuid.UUID) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID uuid.UUID) error
}

type TripService struct {
	tripRepo       repositories.TripRepository
	attractionRepo repositories.AttractionRepository
	packingRepo    repositories.PackingRepository
}

func NewTripService(
	tripRepo repositories.TripRepository,
	attractionRepo repositories.AttractionRepository,
	packingRepo repositories.PackingRepository,
) TripServiceInterface {
	return &TripService{
		tripRepo:       tripRepo,
		attractionRepo: attractionRepo,
		packingRepo:    packingRepo,
	}
}

// CreateTrip plans the itinerary synchronously and persists the trip with
// its items in one transaction. A city without catalog entries is a data
// error and nothing is written.
func (s *TripService) CreateTrip(ctx context.Context, accountID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	interestsCSV := strings.Join(request.Interests, ",")
	interests := planner.ParseInterests(interestsCSV)

	attractions, err := s.attractionRepo.ListByCity(ctx, request.City)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) == 0 {
		return nil, utils.ErrCityNotInCatalog
	}

	candidates := planner.FilterAttractions(attractions, interests)
	plans, err := planner.BuildItinerary(request.City, candidates, request.Days)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		AccountID: accountID,
		Name:      request.Name,
		City:      request.City,
		StartDate: request.StartDate,
		Days:      request.Days,
		Interests: interestsCSV,
		Budget:    request.Budget,
	}

	var items []db_models.TripItem
	for _, dayPlan := range plans {
		for _, stop := range dayPlan.Stops {
			items = append(items, db_models.TripItem{
				Day:          dayPlan.Day,
				OrderIndex:   stop.OrderIndex,
				AttractionID: stop.Attraction.ID,
				StartTime:    stop.StartTime,
				EndTime:      stop.EndTime,
			})
		}
	}

	if err := s.tripRepo.CreateWithItems(ctx, trip, items); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetTripDetail(ctx, accountID, trip.ID)
}

func (s *TripService) ListTrips(ctx context.Context, accountID uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, buildTripResponse(&t))
	}
	return out, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, accountID, tripID uuid.UUID) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetByIDForAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	dayGroups, err := s.resolveDayGroups(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	packingItems, err := s.packingRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	packing := make([]response_models.PackingItemResponse, 0, len(packingItems))
	for _, p := range packingItems {
		packing = append(packing, response_models.PackingItemResponse{
			ID:       p.ID.String(),
			ItemName: p.ItemName,
			IsPacked: p.IsPacked,
		})
	}

	return &response_models.TripDetailResponse{
		Trip:         buildTripResponse(trip),
		DayGroups:    dayGroups,
		PackingItems: packing,
		Cost:         EstimateTripCost(trip.Days, trip.Budget),
	}, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, accountID, tripID uuid.UUID) error {
	trip, err := s.tripRepo.GetByIDForAccount(ctx, tripID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	if err := s.tripRepo.DeleteCascade(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// resolveDayGroups joins the ordered trip items back onto the catalog so
// the response carries names, categories and map coordinates.
func (s *TripService) resolveDayGroups(ctx context.Context, tripID uuid.UUID) ([]response_models.DayGroupResponse, error) {
	items, err := s.tripRepo.ListItems(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.AttractionID)
	}
	attractions, err := s.attractionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	groups := []response_models.DayGroupResponse{}
	for _, it := range items {
		a := attractions[it.AttractionID]
		entry := response_models.ItineraryItemResponse{
			Name:          a.Name,
			Category:      a.Category,
			Lat:           a.Lat,
			Lon:           a.Lon,
			StartTime:     it.StartTime,
			EndTime:       it.EndTime,
			DurationHours: a.DurationHours,
			OrderIndex:    it.OrderIndex,
		}
		if n := len(groups); n > 0 && groups[n-1].Day == it.Day {
			groups[n-1].Items = append(groups[n-1].Items, entry)
		} else {
			groups = append(groups, response_models.DayGroupResponse{
				Day:   it.Day,
				Items: []response_models.ItineraryItemResponse{entry},
			})
		}
	}
	return groups, nil
}

func buildTripResponse(t *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		City:      t.City,
		StartDate: t.StartDate,
		Days:      t.Days,
		Interests: t.Interests,
		Budget:    t.Budget,
	}
}
