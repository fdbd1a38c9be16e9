package pricing

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func testCatalog() Catalog {
	return Catalog{
		"h-1": {
			ID: "h-1", Name: "Beach Resort", Category: CategoryHotel, Currency: "USD",
			Hotel: testHotel(),
		},
		"act-1": {
			ID: "act-1", Name: "Snorkeling", Category: CategoryActivity, Currency: "THB",
			Activity: &ActivityPayload{Packages: []Package{{Name: "Half day", AdultPrice: 1200, ChildPrice: 800}}},
		},
		"tr-1": {
			ID: "tr-1", Name: "Airport pickup", Category: CategoryTransfer, Currency: "USD",
			Transfer: &TransferPayload{
				Vehicles: []VehicleOption{
					{VehicleType: "Sedan", Price: 50, MaxPassengers: 4},
					{VehicleType: "Minibus", Price: 120, MaxPassengers: 10},
				},
			},
		},
		"meal-1": {
			ID: "meal-1", Name: "Welcome dinner", Category: CategoryMeal, Currency: "THB",
			Flat: &FlatPayload{Price: 500, PerPerson: true},
		},
	}
}

func testItinerary() Itinerary {
	return Itinerary{
		DisplayCurrency: "USD",
		Travelers:       testTravelers(),
		Days: []Day{
			{
				Number: 1,
				Date:   date(2026, time.February, 1),
				Items: []Item{
					{EntryID: "tr-1", Transfer: &TransferSelection{VehicleType: "Sedan"}},
					{EntryID: "h-1", Hotel: &HotelSelection{
						CheckOut: date(2026, time.February, 3),
						Bookings: []RoomBooking{{RoomType: "Deluxe", Rooms: 1, TravelerIDs: []string{"t1", "t2", "t3"}}},
					}},
				},
			},
			{
				Number: 2,
				Date:   date(2026, time.February, 2),
				Items: []Item{
					{EntryID: "act-1"},
					{EntryID: "meal-1"},
				},
			},
		},
	}
}

// THB -> USD resolves through the inverse of the direct USD -> THB entry.
func testAggRates() RateTable {
	return NewRateTable([]ExchangeRate{{From: "USD", To: "THB", Rate: 4}})
}

func TestSummarizeTotals(t *testing.T) {
	summary := Summarize(testItinerary(), testCatalog(), testAggRates(), 0)

	// Sedan 50 + hotel 200 + activity (2*1200+800)/4 + dinner 3*500/4
	want := 50.0 + 200 + 800 + 375
	if !almostEqual(summary.GrandTotal, want) {
		t.Fatalf("expected grand total %v, got %v", want, summary.GrandTotal)
	}
	if summary.Currency != "USD" {
		t.Fatalf("expected USD summary, got %s", summary.Currency)
	}
	if len(summary.Lines) != 4 {
		t.Fatalf("expected 4 line details, got %d", len(summary.Lines))
	}
	for _, line := range summary.Lines {
		if line.Error != "" {
			t.Fatalf("unexpected line error: %s", line.Error)
		}
	}

	// Hotel 200/3 each, adults add 300 activity + 125 dinner, the child
	// 200 activity + 125 dinner. The sedan is shared and attributed to
	// nobody.
	if !almostEqual(summary.TravelerTotals["t1"], 200.0/3+300+125) {
		t.Fatalf("unexpected adult total: %v", summary.TravelerTotals["t1"])
	}
	if !almostEqual(summary.TravelerTotals["t3"], 200.0/3+200+125) {
		t.Fatalf("unexpected child total: %v", summary.TravelerTotals["t3"])
	}

	attributed := 0.0
	for _, v := range summary.TravelerTotals {
		attributed += v
	}
	if !almostEqual(summary.GrandTotal-attributed, 50) {
		t.Fatalf("only the shared sedan should be unattributed, diff %v", summary.GrandTotal-attributed)
	}
}

func TestSummarizeMarkupOnlyOnConversions(t *testing.T) {
	summary := Summarize(testItinerary(), testCatalog(), testAggRates(), 10)

	// USD items are untouched; THB items gain 10%.
	want := 50.0 + 200 + 800*1.1 + 375*1.1
	if !almostEqual(summary.GrandTotal, want) {
		t.Fatalf("expected %v, got %v", want, summary.GrandTotal)
	}
}

func TestSummarizeFailingItemIsIsolated(t *testing.T) {
	it := testItinerary()
	// Overbook the sedan: 3 travelers, capacity 4 -> shrink capacity via
	// a 5th-passenger scenario instead: point the item at the sedan and
	// add travelers.
	it.Travelers = append(it.Travelers,
		Traveler{ID: "t4", Type: TravelerAdult},
		Traveler{ID: "t5", Type: TravelerAdult},
	)

	summary := Summarize(it, testCatalog(), testAggRates(), 0)

	var failed *LineDetail
	for i := range summary.Lines {
		if summary.Lines[i].EntryID == "tr-1" {
			failed = &summary.Lines[i]
		}
	}
	if failed == nil || failed.Error == "" {
		t.Fatal("expected the overbooked sedan to carry an error")
	}
	if !strings.Contains(failed.Error, "seats 4") {
		t.Fatalf("unexpected error text: %s", failed.Error)
	}
	if failed.Amount != 0 {
		t.Fatalf("failed item must contribute nothing, got %v", failed.Amount)
	}

	// Other items still price: hotel 200 + activity 4 adults + 1 child
	// + dinner 5 heads.
	want := 200.0 + (4*1200+800)/4 + 5*500/4
	if !almostEqual(summary.GrandTotal, want) {
		t.Fatalf("expected %v, got %v", want, summary.GrandTotal)
	}
}

func TestSummarizeMissingEntryAndCurrency(t *testing.T) {
	it := testItinerary()
	it.Days[1].Items = append(it.Days[1].Items, Item{EntryID: "ghost"})

	catalog := testCatalog()
	catalog["meal-1"] = Entry{
		ID: "meal-1", Name: "Welcome dinner", Category: CategoryMeal, Currency: "KRW",
		Flat: &FlatPayload{Price: 500, PerPerson: true},
	}

	summary := Summarize(it, catalog, testAggRates(), 0)

	errorsByID := map[string]string{}
	for _, line := range summary.Lines {
		if line.Error != "" {
			errorsByID[line.EntryID] = line.Error
		}
	}
	if len(errorsByID) != 2 {
		t.Fatalf("expected 2 failing lines, got %v", errorsByID)
	}
	if !strings.Contains(errorsByID["ghost"], "not found") {
		t.Fatalf("unexpected missing-entry error: %s", errorsByID["ghost"])
	}
	if !strings.Contains(errorsByID["meal-1"], "KRW") {
		t.Fatalf("unexpected conversion error: %s", errorsByID["meal-1"])
	}

	// Only the sedan, the hotel and the activity remain in the total.
	want := 50.0 + 200 + 800
	if !almostEqual(summary.GrandTotal, want) {
		t.Fatalf("expected %v, got %v", want, summary.GrandTotal)
	}
}

func TestSummarizeExclusionRemovesExactlyOneShare(t *testing.T) {
	base := Summarize(testItinerary(), testCatalog(), testAggRates(), 0)

	it := testItinerary()
	it.Days[1].Items[0].Excluded = []string{"t2"}
	excluded := Summarize(it, testCatalog(), testAggRates(), 0)

	// t2's activity share (1200 THB -> 300 USD) leaves both the grand
	// total and t2's total; everyone else is untouched.
	if !almostEqual(base.GrandTotal-excluded.GrandTotal, 300) {
		t.Fatalf("expected grand total to drop by 300, got %v", base.GrandTotal-excluded.GrandTotal)
	}
	if !almostEqual(base.TravelerTotals["t2"]-excluded.TravelerTotals["t2"], 300) {
		t.Fatalf("expected t2 to drop by 300, got %v", base.TravelerTotals["t2"]-excluded.TravelerTotals["t2"])
	}
	for _, id := range []string{"t1", "t3"} {
		if !almostEqual(base.TravelerTotals[id], excluded.TravelerTotals[id]) {
			t.Fatalf("traveler %s must be unaffected", id)
		}
	}
}

func TestSummarizeBudget(t *testing.T) {
	it := testItinerary()
	budget := 2000.0
	it.Budget = &budget

	summary := Summarize(it, testCatalog(), testAggRates(), 0)
	if summary.Remaining == nil {
		t.Fatal("expected remaining budget")
	}
	if !almostEqual(*summary.Remaining, 2000-summary.GrandTotal) {
		t.Fatalf("unexpected remaining budget: %v", *summary.Remaining)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	a := Summarize(testItinerary(), testCatalog(), testAggRates(), 7.5)
	b := Summarize(testItinerary(), testCatalog(), testAggRates(), 7.5)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical summaries")
	}
}
