package services

import (
	"context"
	"log"

	"tripcost/internal/models/db_models"
	"tripcost/internal/models/response_models"
	"tripcost/internal/pricing"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

type QuoteServiceInterface interface {
	QuoteItinerary(ctx context.Context, itineraryID string) (*response_models.QuoteResponse, error)
}

// QuoteService glues storage to the pricing engine: it takes one
// consistent snapshot of the catalog and rate table, maps the stored
// itinerary into the engine's plain-data shape and runs a single
// Summarize pass.
type QuoteService struct {
	itineraryRepo repositories.ItineraryRepository
	catalogRepo   repositories.CatalogRepository
	rateRepo      repositories.RateRepository
}

func NewQuoteService(
	itineraryRepo repositories.ItineraryRepository,
	catalogRepo repositories.CatalogRepository,
	rateRepo repositories.RateRepository,
) QuoteServiceInterface {
	return &QuoteService{
		itineraryRepo: itineraryRepo,
		catalogRepo:   catalogRepo,
		rateRepo:      rateRepo,
	}
}

func buildPricingItinerary(itinerary *db_models.Itinerary) (pricing.Itinerary, error) {
	out := pricing.Itinerary{
		DisplayCurrency: itinerary.DisplayCurrency,
		Budget:          itinerary.Budget,
	}

	for _, t := range itinerary.Travelers {
		out.Travelers = append(out.Travelers, pricing.Traveler{
			ID:   t.ID.String(),
			Name: t.Name,
			Type: pricing.TravelerType(t.Type),
		})
	}

	for _, day := range itinerary.Days {
		pricingDay := pricing.Day{Number: day.DayNumber, Date: day.Date}
		for i := range day.Items {
			item, err := day.Items[i].ToPricingItem()
			if err != nil {
				return pricing.Itinerary{}, err
			}
			pricingDay.Items = append(pricingDay.Items, item)
		}
		out.Days = append(out.Days, pricingDay)
	}

	return out, nil
}

func (s *QuoteService) QuoteItinerary(ctx context.Context, itineraryID string) (*response_models.QuoteResponse, error) {
	itinerary, err := s.itineraryRepo.GetWithDetails(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	catalog, err := s.catalogRepo.Snapshot(ctx)
	if err != nil {
		log.Printf("Error loading catalog snapshot: %v", err)
		return nil, utils.ErrDatabaseError
	}

	rates, markup, err := s.rateRepo.Snapshot(ctx)
	if err != nil {
		log.Printf("Error loading rate snapshot: %v", err)
		return nil, utils.ErrDatabaseError
	}

	priced, err := buildPricingItinerary(itinerary)
	if err != nil {
		log.Printf("Error decoding itinerary %s: %v", itineraryID, err)
		return nil, utils.ErrInvalidInput
	}

	summary := pricing.Summarize(priced, catalog, rates, markup)

	out := &response_models.QuoteResponse{
		ItineraryID:    itinerary.ID.String(),
		Currency:       summary.Currency,
		MarkupPercent:  markup,
		GrandTotal:     summary.GrandTotal,
		TravelerTotals: summary.TravelerTotals,
		Budget:         summary.Budget,
		Remaining:      summary.Remaining,
		Lines:          make([]response_models.QuoteLineResponse, 0, len(summary.Lines)),
	}
	for _, line := range summary.Lines {
		out.Lines = append(out.Lines, response_models.QuoteLineResponse{
			Day:          line.Day,
			EntryID:      line.EntryID,
			EntryName:    line.EntryName,
			Description:  line.Description,
			Currency:     line.Currency,
			NativeAmount: line.NativeAmount,
			Amount:       line.Amount,
			Shares:       line.Shares,
			Error:        line.Error,
		})
	}
	return out, nil
}
