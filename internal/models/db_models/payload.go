package db_models

import (
	"encoding/json"
	"fmt"
	"time"

	"tripcost/internal/pricing"
	"tripcost/pkg/utils"
)

// JSON shapes of the jsonb payload/selection columns. Dates travel as
// "2006-01-02" strings; forms author these documents, this file is the
// single place that decodes them.

type SeasonJSON struct {
	Start        string   `json:"start"`
	End          string   `json:"end"`
	NightlyRate  float64  `json:"nightlyRate"`
	ExtraBedRate *float64 `json:"extraBedRate,omitempty"`
}

type RoomTypeJSON struct {
	Name           string       `json:"name"`
	AllowsExtraBed bool         `json:"allowsExtraBed"`
	Seasons        []SeasonJSON `json:"seasons"`
}

type HotelPayloadJSON struct {
	RoomTypes []RoomTypeJSON `json:"roomTypes"`
}

type PackageJSON struct {
	Name           string   `json:"name"`
	AdultPrice     float64  `json:"adultPrice"`
	ChildPrice     float64  `json:"childPrice"`
	ValidFrom      string   `json:"validFrom,omitempty"`
	ValidTo        string   `json:"validTo,omitempty"`
	ClosedWeekdays []int    `json:"closedWeekdays,omitempty"`
	ClosedDates    []string `json:"closedDates,omitempty"`
}

type ActivityPayloadJSON struct {
	Packages []PackageJSON `json:"packages"`
}

type TicketsJSON struct {
	AdultPrice float64 `json:"adultPrice"`
	ChildPrice float64 `json:"childPrice"`
}

type VehicleJSON struct {
	VehicleType   string  `json:"vehicleType"`
	Price         float64 `json:"price"`
	MaxPassengers int     `json:"maxPassengers"`
}

type SurchargeJSON struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Amount float64 `json:"amount"`
}

type TransferPayloadJSON struct {
	Tickets    *TicketsJSON    `json:"tickets,omitempty"`
	Vehicles   []VehicleJSON   `json:"vehicles,omitempty"`
	Surcharges []SurchargeJSON `json:"surcharges,omitempty"`
}

type FlatPayloadJSON struct {
	Price          float64  `json:"price"`
	SecondaryPrice *float64 `json:"secondaryPrice,omitempty"`
	PerPerson      bool     `json:"perPerson"`
}

type RoomBookingJSON struct {
	RoomType    string   `json:"roomType"`
	Rooms       int      `json:"rooms"`
	ExtraBed    bool     `json:"extraBed"`
	TravelerIDs []string `json:"travelerIds,omitempty"`
}

// SelectionJSON is the itinerary item's concrete choice. Only the keys
// matching the entry's category are present.
type SelectionJSON struct {
	CheckOut    string            `json:"checkOut,omitempty"`
	Bookings    []RoomBookingJSON `json:"bookings,omitempty"`
	Package     string            `json:"package,omitempty"`
	VehicleType string            `json:"vehicleType,omitempty"`
}

func mustDate(s, field string) (time.Time, error) {
	t, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", field, s, err)
	}
	return t, nil
}

func optionalDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := mustDate(s, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToPricingEntry decodes the jsonb payload into the tagged-union entry
// the pricing engine works on.
func (e *CatalogEntry) ToPricingEntry() (pricing.Entry, error) {
	entry := pricing.Entry{
		ID:       e.ID.String(),
		Name:     e.Name,
		Category: pricing.Category(e.Category),
		Currency: e.Currency,
		Unit:     e.Unit,
		Notes:    e.Notes,
	}
	if !entry.Category.Valid() {
		return pricing.Entry{}, fmt.Errorf("entry %s has unknown category %q", e.ID, e.Category)
	}

	switch entry.Category {
	case pricing.CategoryHotel:
		var raw HotelPayloadJSON
		if err := json.Unmarshal(e.Payload, &raw); err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		payload, err := raw.toPricing()
		if err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		entry.Hotel = payload

	case pricing.CategoryActivity:
		var raw ActivityPayloadJSON
		if err := json.Unmarshal(e.Payload, &raw); err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		payload, err := raw.toPricing()
		if err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		entry.Activity = payload

	case pricing.CategoryTransfer:
		var raw TransferPayloadJSON
		if err := json.Unmarshal(e.Payload, &raw); err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		payload, err := raw.toPricing()
		if err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		entry.Transfer = payload

	case pricing.CategoryMeal, pricing.CategoryMisc:
		var raw FlatPayloadJSON
		if err := json.Unmarshal(e.Payload, &raw); err != nil {
			return pricing.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		entry.Flat = &pricing.FlatPayload{
			Price:          raw.Price,
			SecondaryPrice: raw.SecondaryPrice,
			PerPerson:      raw.PerPerson,
		}
	}

	return entry, nil
}

func (p HotelPayloadJSON) toPricing() (*pricing.HotelPayload, error) {
	out := &pricing.HotelPayload{RoomTypes: make([]pricing.RoomType, 0, len(p.RoomTypes))}
	for _, rt := range p.RoomTypes {
		seasons := make([]pricing.SeasonalPrice, 0, len(rt.Seasons))
		for _, s := range rt.Seasons {
			start, err := mustDate(s.Start, "season start")
			if err != nil {
				return nil, err
			}
			end, err := mustDate(s.End, "season end")
			if err != nil {
				return nil, err
			}
			seasons = append(seasons, pricing.SeasonalPrice{
				Start:        start,
				End:          end,
				NightlyRate:  s.NightlyRate,
				ExtraBedRate: s.ExtraBedRate,
			})
		}
		out.RoomTypes = append(out.RoomTypes, pricing.RoomType{
			Name:           rt.Name,
			AllowsExtraBed: rt.AllowsExtraBed,
			Seasons:        seasons,
		})
	}
	return out, nil
}

func (p ActivityPayloadJSON) toPricing() (*pricing.ActivityPayload, error) {
	out := &pricing.ActivityPayload{Packages: make([]pricing.Package, 0, len(p.Packages))}
	for _, pkg := range p.Packages {
		validFrom, err := optionalDate(pkg.ValidFrom, "valid from")
		if err != nil {
			return nil, err
		}
		validTo, err := optionalDate(pkg.ValidTo, "valid to")
		if err != nil {
			return nil, err
		}

		weekdays := make([]time.Weekday, 0, len(pkg.ClosedWeekdays))
		for _, wd := range pkg.ClosedWeekdays {
			if wd < 0 || wd > 6 {
				return nil, fmt.Errorf("closed weekday %d out of range", wd)
			}
			weekdays = append(weekdays, time.Weekday(wd))
		}

		closed := make([]time.Time, 0, len(pkg.ClosedDates))
		for _, d := range pkg.ClosedDates {
			day, err := mustDate(d, "closed")
			if err != nil {
				return nil, err
			}
			closed = append(closed, day)
		}

		out.Packages = append(out.Packages, pricing.Package{
			Name:       pkg.Name,
			AdultPrice: pkg.AdultPrice,
			ChildPrice: pkg.ChildPrice,
			Schedule: pricing.Schedule{
				ValidFrom:      validFrom,
				ValidTo:        validTo,
				ClosedWeekdays: weekdays,
				ClosedDates:    closed,
			},
		})
	}
	return out, nil
}

func (p TransferPayloadJSON) toPricing() (*pricing.TransferPayload, error) {
	out := &pricing.TransferPayload{}
	if p.Tickets != nil {
		out.Tickets = &pricing.TicketPricing{
			AdultPrice: p.Tickets.AdultPrice,
			ChildPrice: p.Tickets.ChildPrice,
		}
	}
	for _, v := range p.Vehicles {
		out.Vehicles = append(out.Vehicles, pricing.VehicleOption{
			VehicleType:   v.VehicleType,
			Price:         v.Price,
			MaxPassengers: v.MaxPassengers,
		})
	}
	for _, s := range p.Surcharges {
		start, err := mustDate(s.Start, "surcharge start")
		if err != nil {
			return nil, err
		}
		end, err := mustDate(s.End, "surcharge end")
		if err != nil {
			return nil, err
		}
		out.Surcharges = append(out.Surcharges, pricing.SurchargePeriod{
			Start:  start,
			End:    end,
			Amount: s.Amount,
		})
	}
	return out, nil
}

// ToPricingItem decodes one itinerary item, selection included, into
// the engine's item shape.
func (i *ItineraryItem) ToPricingItem() (pricing.Item, error) {
	item := pricing.Item{
		EntryID:  i.EntryID.String(),
		Excluded: i.ExcludedTravelerIDs,
		Quantity: i.Quantity,
	}

	var sel SelectionJSON
	if len(i.Selection) > 0 {
		if err := json.Unmarshal(i.Selection, &sel); err != nil {
			return pricing.Item{}, fmt.Errorf("item %s: %w", i.ID, err)
		}
	}

	if sel.CheckOut != "" || len(sel.Bookings) > 0 {
		checkOut, err := mustDate(sel.CheckOut, "checkout")
		if err != nil {
			return pricing.Item{}, fmt.Errorf("item %s: %w", i.ID, err)
		}
		bookings := make([]pricing.RoomBooking, 0, len(sel.Bookings))
		for _, b := range sel.Bookings {
			bookings = append(bookings, pricing.RoomBooking{
				RoomType:    b.RoomType,
				Rooms:       b.Rooms,
				ExtraBed:    b.ExtraBed,
				TravelerIDs: b.TravelerIDs,
			})
		}
		item.Hotel = &pricing.HotelSelection{CheckOut: checkOut, Bookings: bookings}
	}
	if sel.Package != "" {
		item.Activity = &pricing.ActivitySelection{Package: sel.Package}
	}
	if sel.VehicleType != "" {
		item.Transfer = &pricing.TransferSelection{VehicleType: sel.VehicleType}
	}

	return item, nil
}
