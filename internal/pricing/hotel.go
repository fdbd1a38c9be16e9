package pricing

import (
	"time"

	"tripcost/pkg/utils"
)

func (h *HotelPayload) roomType(name string) *RoomType {
	for i := range h.RoomTypes {
		if h.RoomTypes[i].Name == name {
			return &h.RoomTypes[i]
		}
	}
	return nil
}

// seasonFor picks the seasonal range covering night. Ranges may
// overlap; the tie-break is explicit: among covering ranges, the one
// with the latest start wins, so a narrower, more recently defined
// season overrides a broader one. Returns nil when no range covers the
// night.
func seasonFor(seasons []SeasonalPrice, night time.Time) *SeasonalPrice {
	night = utils.DateOnly(night)

	var best *SeasonalPrice
	for i := range seasons {
		s := &seasons[i]
		start := utils.DateOnly(s.Start)
		end := utils.DateOnly(s.End)
		if night.Before(start) || night.After(end) {
			continue
		}
		if best == nil || start.After(utils.DateOnly(best.Start)) {
			best = s
		}
	}
	return best
}

// priceBooking prices one room booking over the whole stay: for each
// night, the covering seasonal rate times the room count, plus the
// extra-bed rate when requested, allowed by the room type and defined
// for that season. A night with no covering season fails with a
// NightRateError; silently defaulting would corrupt the bill.
func (h *HotelPayload) priceBooking(checkIn time.Time, nights int, booking RoomBooking) (float64, error) {
	rt := h.roomType(booking.RoomType)
	if rt == nil {
		return 0, selectionErrorf("unknown room type %q", booking.RoomType)
	}

	rooms := booking.Rooms
	if rooms < 1 {
		rooms = 1
	}

	total := 0.0
	night := utils.DateOnly(checkIn)
	for n := 0; n < nights; n++ {
		season := seasonFor(rt.Seasons, night)
		if season == nil {
			return 0, &NightRateError{RoomType: rt.Name, Night: night}
		}

		total += season.NightlyRate * float64(rooms)
		if booking.ExtraBed && rt.AllowsExtraBed && season.ExtraBedRate != nil {
			total += *season.ExtraBedRate * float64(rooms)
		}

		night = night.AddDate(0, 0, 1)
	}
	return total, nil
}

// PriceStay prices a multi-night stay across all room bookings. It
// returns the grand amount plus the per-booking amounts the aggregator
// uses to split costs across each room's assigned travelers.
func (h *HotelPayload) PriceStay(checkIn time.Time, nights int, bookings []RoomBooking) (float64, []float64, error) {
	if nights < 1 {
		return 0, nil, selectionErrorf("stay must be at least one night")
	}
	if len(bookings) == 0 {
		return 0, nil, selectionErrorf("no room bookings selected")
	}

	total := 0.0
	perBooking := make([]float64, len(bookings))
	for i, booking := range bookings {
		amount, err := h.priceBooking(checkIn, nights, booking)
		if err != nil {
			return 0, nil, err
		}
		perBooking[i] = amount
		total += amount
	}
	return total, perBooking, nil
}
