package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"tripcost/internal/models/db_models"
	"tripcost/internal/pricing"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

// The fakes embed the repository interface and override only what the
// quote path touches. Any other call would panic, which is what we want
// in a test.

type fakeItineraryRepo struct {
	repositories.ItineraryRepository
	itinerary *db_models.Itinerary
	err       error
}

func (f *fakeItineraryRepo) GetWithDetails(ctx context.Context, id string) (*db_models.Itinerary, error) {
	return f.itinerary, f.err
}

type fakeCatalogRepo struct {
	repositories.CatalogRepository
	catalog pricing.Catalog
}

func (f *fakeCatalogRepo) Snapshot(ctx context.Context) (pricing.Catalog, error) {
	return f.catalog, nil
}

type fakeRateRepo struct {
	repositories.RateRepository
	rates  pricing.RateTable
	markup float64
}

func (f *fakeRateRepo) Snapshot(ctx context.Context) (pricing.RateTable, float64, error) {
	return f.rates, f.markup, nil
}

func quoteFixture() (*db_models.Itinerary, pricing.Catalog) {
	entryID := uuid.New()
	itineraryID := uuid.New()
	dayID := uuid.New()

	itinerary := &db_models.Itinerary{
		BaseModel:       db_models.BaseModel{ID: itineraryID},
		Title:           "Bangkok long weekend",
		DisplayCurrency: "THB",
		Travelers: []db_models.Traveler{
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, ItineraryID: itineraryID, Name: "An", Type: "adult"},
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, ItineraryID: itineraryID, Name: "Binh", Type: "adult"},
		},
		Days: []db_models.ItineraryDay{
			{
				BaseModel:   db_models.BaseModel{ID: dayID},
				ItineraryID: itineraryID,
				DayNumber:   1,
				Date:        time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
				Items: []db_models.ItineraryItem{
					{
						BaseModel: db_models.BaseModel{ID: uuid.New()},
						DayID:     dayID,
						EntryID:   entryID,
						Quantity:  1,
						Selection: []byte(`{}`),
					},
				},
			},
		},
	}

	catalog := pricing.Catalog{
		entryID.String(): {
			ID:       entryID.String(),
			Name:     "Street food dinner",
			Category: pricing.CategoryMeal,
			Currency: "THB",
			Flat:     &pricing.FlatPayload{Price: 400, PerPerson: true},
		},
	}
	return itinerary, catalog
}

func TestQuoteItinerary(t *testing.T) {
	itinerary, catalog := quoteFixture()

	svc := NewQuoteService(
		&fakeItineraryRepo{itinerary: itinerary},
		&fakeCatalogRepo{catalog: catalog},
		&fakeRateRepo{markup: 5},
	)

	quote, err := svc.QuoteItinerary(context.Background(), itinerary.ID.String())
	if err != nil {
		t.Fatalf("QuoteItinerary: %v", err)
	}

	if quote.Currency != "THB" {
		t.Fatalf("currency = %q, want THB", quote.Currency)
	}
	// Per-person meal, two adults, no conversion so the markup must not
	// touch the amount.
	if quote.GrandTotal != 800 {
		t.Fatalf("grand total = %v, want 800", quote.GrandTotal)
	}
	if len(quote.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(quote.Lines))
	}
	if quote.Lines[0].Error != "" {
		t.Fatalf("unexpected line error %q", quote.Lines[0].Error)
	}
	for _, traveler := range itinerary.Travelers {
		if got := quote.TravelerTotals[traveler.ID.String()]; got != 400 {
			t.Fatalf("traveler %s total = %v, want 400", traveler.Name, got)
		}
	}
}

func TestQuoteItineraryNotFound(t *testing.T) {
	svc := NewQuoteService(&fakeItineraryRepo{}, &fakeCatalogRepo{}, &fakeRateRepo{})

	_, err := svc.QuoteItinerary(context.Background(), uuid.NewString())
	if !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("err = %v, want ErrItineraryNotFound", err)
	}
}

func TestQuoteItineraryBadSelection(t *testing.T) {
	itinerary, catalog := quoteFixture()
	itinerary.Days[0].Items[0].Selection = []byte(`{"checkOut": "garbage", "bookings": [{"roomType": "Deluxe"}]}`)

	svc := NewQuoteService(
		&fakeItineraryRepo{itinerary: itinerary},
		&fakeCatalogRepo{catalog: catalog},
		&fakeRateRepo{},
	)

	if _, err := svc.QuoteItinerary(context.Background(), itinerary.ID.String()); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
