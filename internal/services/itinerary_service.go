package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"tripcost/internal/models/db_models"
	"tripcost/internal/models/request_models"
	"tripcost/internal/models/response_models"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(request request_models.CreateItineraryRequest, ctx context.Context) (uuid.UUID, error)
	GetItineraryById(ctx context.Context, id string) (*response_models.ItineraryDetailResponse, error)
	ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ItineraryResponse, error)
	DeleteItinerary(id uuid.UUID, ctx context.Context) error
	AddItemToDay(ctx context.Context, dayID uuid.UUID, request request_models.AddItemRequest) (uuid.UUID, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	catalogRepo   repositories.CatalogRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, catalogRepo repositories.CatalogRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		catalogRepo:   catalogRepo,
	}
}

func (s *ItineraryService) CreateItinerary(request request_models.CreateItineraryRequest, ctx context.Context) (uuid.UUID, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil || start.IsZero() {
		return uuid.Nil, utils.ErrInvalidInput
	}

	travelers := make([]db_models.Traveler, 0, len(request.Travelers))
	for _, t := range request.Travelers {
		travelerType := t.Type
		if travelerType == "" {
			travelerType = "adult"
		}
		if travelerType != "adult" && travelerType != "child" {
			return uuid.Nil, utils.ErrInvalidInput
		}
		travelers = append(travelers, db_models.Traveler{Name: t.Name, Type: travelerType})
	}

	days := make([]db_models.ItineraryDay, 0, request.DayCount)
	for i := 0; i < request.DayCount; i++ {
		days = append(days, db_models.ItineraryDay{
			DayNumber: i + 1,
			Date:      start.AddDate(0, 0, i),
		})
	}

	itinerary := &db_models.Itinerary{
		Title:           request.Title,
		DisplayCurrency: request.DisplayCurrency,
		Budget:          request.Budget,
		Travelers:       travelers,
		Days:            days,
	}

	id, err := s.itineraryRepo.Create(ctx, itinerary)
	if err != nil {
		log.Printf("Error creating itinerary: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, id string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	out := &response_models.ItineraryDetailResponse{
		ID:              itinerary.ID.String(),
		Title:           itinerary.Title,
		DisplayCurrency: itinerary.DisplayCurrency,
		Budget:          itinerary.Budget,
	}
	for _, t := range itinerary.Travelers {
		out.Travelers = append(out.Travelers, response_models.TravelerResponse{
			ID:   t.ID.String(),
			Name: t.Name,
			Type: t.Type,
		})
	}
	for _, day := range itinerary.Days {
		dayResp := response_models.ItineraryDayResponse{
			ID:        day.ID.String(),
			DayNumber: day.DayNumber,
			Date:      utils.FormatDate(day.Date),
			Items:     []response_models.ItineraryItemResponse{},
		}
		for _, item := range day.Items {
			dayResp.Items = append(dayResp.Items, response_models.ItineraryItemResponse{
				ID:                  item.ID.String(),
				EntryID:             item.EntryID.String(),
				Quantity:            item.Quantity,
				ExcludedTravelerIDs: item.ExcludedTravelerIDs,
				Selection:           item.Selection,
			})
		}
		out.Days = append(out.Days, dayResp)
	}
	return out, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, response_models.ItineraryResponse{
			ID:              it.ID.String(),
			Title:           it.Title,
			DisplayCurrency: it.DisplayCurrency,
			Budget:          it.Budget,
			TravelerCount:   len(it.Travelers),
			DayCount:        len(it.Days),
		})
	}
	return out, nil
}

func (s *ItineraryService) DeleteItinerary(id uuid.UUID, ctx context.Context) error {
	existing, err := s.itineraryRepo.GetWithDetails(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) AddItemToDay(ctx context.Context, dayID uuid.UUID, request request_models.AddItemRequest) (uuid.UUID, error) {
	entry, err := s.catalogRepo.GetByID(ctx, request.EntryID.String())
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return uuid.Nil, utils.ErrEntryNotFound
	}

	quantity := request.Quantity
	if quantity < 1 {
		quantity = 1
	}

	selection := datatypes.JSON(request.Selection)
	if len(selection) == 0 {
		selection = datatypes.JSON([]byte("{}"))
	}

	item := &db_models.ItineraryItem{
		EntryID:             request.EntryID,
		Quantity:            quantity,
		ExcludedTravelerIDs: request.ExcludedTravelerIDs,
		Selection:           selection,
	}
	// The decoder is the gatekeeper: a selection that does not parse is
	// rejected at entry instead of failing every later quote.
	if _, err := item.ToPricingItem(); err != nil {
		log.Printf("Rejecting item selection: %v", err)
		return uuid.Nil, utils.ErrInvalidInput
	}

	id, err := s.itineraryRepo.AddItem(ctx, dayID, item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, utils.ErrDayNotFound
		}
		log.Printf("Error adding item: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ItineraryService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.itineraryRepo.RemoveItem(ctx, itemID); err != nil {
		log.Printf("Error removing item: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
