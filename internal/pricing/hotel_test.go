package pricing

import (
	"errors"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 { return &f }

func testHotel() *HotelPayload {
	return &HotelPayload{
		RoomTypes: []RoomType{
			{
				Name:           "Deluxe",
				AllowsExtraBed: true,
				Seasons: []SeasonalPrice{
					{
						Start:        date(2026, time.January, 1),
						End:          date(2026, time.June, 30),
						NightlyRate:  100,
						ExtraBedRate: floatPtr(20),
					},
					{
						Start:       date(2026, time.July, 1),
						End:         date(2026, time.August, 31),
						NightlyRate: 150,
					},
				},
			},
			{
				Name: "Standard",
				Seasons: []SeasonalPrice{
					{
						Start:        date(2026, time.January, 1),
						End:          date(2026, time.December, 31),
						NightlyRate:  60,
						ExtraBedRate: floatPtr(15),
					},
				},
			},
		},
	}
}

func TestPriceStayAcrossSeasons(t *testing.T) {
	// 2 nights at 100, 1 night at 150, 2 rooms.
	total, perBooking, err := testHotel().PriceStay(
		date(2026, time.June, 29), 3,
		[]RoomBooking{{RoomType: "Deluxe", Rooms: 2}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(total, 700) {
		t.Fatalf("expected 700, got %v", total)
	}
	if len(perBooking) != 1 || !almostEqual(perBooking[0], 700) {
		t.Fatalf("unexpected per-booking amounts: %v", perBooking)
	}
}

func TestPriceStayOverlapTieBreak(t *testing.T) {
	// A narrow promo season defined inside a broad one: the later start
	// wins on covered nights regardless of list order.
	hotel := &HotelPayload{
		RoomTypes: []RoomType{{
			Name: "Deluxe",
			Seasons: []SeasonalPrice{
				{Start: date(2026, time.March, 10), End: date(2026, time.March, 12), NightlyRate: 80},
				{Start: date(2026, time.January, 1), End: date(2026, time.December, 31), NightlyRate: 100},
			},
		}},
	}

	total, _, err := hotel.PriceStay(date(2026, time.March, 9), 3, []RoomBooking{{RoomType: "Deluxe", Rooms: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// night 9 -> 100, nights 10 and 11 -> 80
	if !almostEqual(total, 260) {
		t.Fatalf("expected 260, got %v", total)
	}
}

func TestPriceStayExtraBed(t *testing.T) {
	hotel := testHotel()

	total, _, err := hotel.PriceStay(date(2026, time.February, 1), 2,
		[]RoomBooking{{RoomType: "Deluxe", Rooms: 2, ExtraBed: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (100 + 20) * 2 rooms * 2 nights
	if !almostEqual(total, 480) {
		t.Fatalf("expected 480, got %v", total)
	}

	// The July season defines no extra-bed rate; nothing is added.
	total, _, err = hotel.PriceStay(date(2026, time.July, 1), 1,
		[]RoomBooking{{RoomType: "Deluxe", Rooms: 1, ExtraBed: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(total, 150) {
		t.Fatalf("expected 150, got %v", total)
	}

	// Standard does not allow extra beds even though a rate is defined.
	total, _, err = hotel.PriceStay(date(2026, time.February, 1), 1,
		[]RoomBooking{{RoomType: "Standard", Rooms: 1, ExtraBed: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(total, 60) {
		t.Fatalf("expected 60, got %v", total)
	}
}

func TestPriceStaySeasonGapFailsLoudly(t *testing.T) {
	// The Deluxe seasons end on August 31; a stay reaching September
	// must fail on that exact night, not price it as zero.
	_, _, err := testHotel().PriceStay(date(2026, time.August, 30), 3,
		[]RoomBooking{{RoomType: "Deluxe", Rooms: 1}})

	var nightErr *NightRateError
	if !errors.As(err, &nightErr) {
		t.Fatalf("expected NightRateError, got %v", err)
	}
	if nightErr.RoomType != "Deluxe" {
		t.Fatalf("error names wrong room type: %v", nightErr.RoomType)
	}
	if !nightErr.Night.Equal(date(2026, time.September, 1)) {
		t.Fatalf("error names wrong night: %v", nightErr.Night)
	}
}

func TestPriceStayMultipleBookings(t *testing.T) {
	total, perBooking, err := testHotel().PriceStay(date(2026, time.February, 1), 2,
		[]RoomBooking{
			{RoomType: "Deluxe", Rooms: 1},
			{RoomType: "Standard", Rooms: 2},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(perBooking[0], 200) || !almostEqual(perBooking[1], 240) {
		t.Fatalf("unexpected per-booking amounts: %v", perBooking)
	}
	if !almostEqual(total, 440) {
		t.Fatalf("expected 440, got %v", total)
	}
}

func TestPriceStayInvalidInputs(t *testing.T) {
	hotel := testHotel()

	if _, _, err := hotel.PriceStay(date(2026, time.February, 1), 0, []RoomBooking{{RoomType: "Deluxe"}}); err == nil {
		t.Fatal("expected error for zero-night stay")
	}
	if _, _, err := hotel.PriceStay(date(2026, time.February, 1), 1, nil); err == nil {
		t.Fatal("expected error for empty bookings")
	}

	_, _, err := hotel.PriceStay(date(2026, time.February, 1), 1, []RoomBooking{{RoomType: "Suite"}})
	var selErr *SelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("expected SelectionError for unknown room type, got %v", err)
	}
}
