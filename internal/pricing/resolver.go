package pricing

import (
	"fmt"
	"strings"

	"tripcost/pkg/utils"
)

// PricedLine is one resolved line item in the entry's native currency.
// Shares maps traveler id to that traveler's part of Amount; shared
// costs (vehicle transfers, total-mode meal/misc) leave it empty.
type PricedLine struct {
	Description string
	Amount      float64
	Shares      map[string]float64
}

// PriceLineItem prices one itinerary item against its catalog entry.
// Dispatch is by category; every payload/selection mismatch, capacity
// breach, schedule conflict or rate gap is returned as a typed error
// for the aggregator to record.
func PriceLineItem(entry Entry, day Day, item Item, travelers []Traveler) (PricedLine, error) {
	included := item.includedTravelers(travelers)

	switch entry.Category {
	case CategoryHotel:
		return priceHotelItem(entry, day, item)
	case CategoryActivity:
		return priceActivityItem(entry, day, item, included)
	case CategoryTransfer:
		return priceTransferItem(entry, day, item, included)
	case CategoryMeal, CategoryMisc:
		return priceFlatItem(entry, item, included)
	default:
		return PricedLine{}, selectionErrorf("unknown category %q for entry %q", entry.Category, entry.ID)
	}
}

func priceHotelItem(entry Entry, day Day, item Item) (PricedLine, error) {
	if entry.Hotel == nil {
		return PricedLine{}, selectionErrorf("entry %q has no hotel payload", entry.ID)
	}
	sel := item.Hotel
	if sel == nil {
		return PricedLine{}, selectionErrorf("hotel item %q has no room selection", entry.ID)
	}

	nights := utils.DaysBetween(day.Date, sel.CheckOut)
	total, perBooking, err := entry.Hotel.PriceStay(day.Date, nights, sel.Bookings)
	if err != nil {
		return PricedLine{}, err
	}

	// Each room's cost is split evenly over its non-excluded assigned
	// travelers; excluding a traveler changes the split, never the
	// room's total.
	shares := map[string]float64{}
	parts := make([]string, 0, len(sel.Bookings))
	for i, booking := range sel.Bookings {
		assigned := make([]string, 0, len(booking.TravelerIDs))
		for _, id := range booking.TravelerIDs {
			if !item.excludes(id) {
				assigned = append(assigned, id)
			}
		}
		if len(assigned) > 0 {
			split := perBooking[i] / float64(len(assigned))
			for _, id := range assigned {
				shares[id] += split
			}
		}

		part := fmt.Sprintf("%dx %s", max(booking.Rooms, 1), booking.RoomType)
		if booking.ExtraBed {
			part += " + extra bed"
		}
		parts = append(parts, part)
	}

	return PricedLine{
		Description: fmt.Sprintf("%d night(s): %s", nights, strings.Join(parts, ", ")),
		Amount:      total,
		Shares:      shares,
	}, nil
}

func priceActivityItem(entry Entry, day Day, item Item, included []Traveler) (PricedLine, error) {
	if entry.Activity == nil {
		return PricedLine{}, selectionErrorf("entry %q has no activity payload", entry.ID)
	}
	if len(entry.Activity.Packages) == 0 {
		return PricedLine{}, selectionErrorf("entry %q has no packages", entry.ID)
	}

	// The itinerary-chosen package, or the catalog's first by default.
	pkg := &entry.Activity.Packages[0]
	if item.Activity != nil && item.Activity.Package != "" {
		pkg = nil
		for i := range entry.Activity.Packages {
			if entry.Activity.Packages[i].Name == item.Activity.Package {
				pkg = &entry.Activity.Packages[i]
				break
			}
		}
		if pkg == nil {
			return PricedLine{}, selectionErrorf("unknown package %q for entry %q", item.Activity.Package, entry.ID)
		}
	}

	if status := pkg.Schedule.StatusOn(day.Date); status != DayOpen {
		return PricedLine{}, &ScheduleError{Package: pkg.Name, Date: day.Date, Status: status}
	}

	line := pricePerPerson(included, pkg.AdultPrice, pkg.ChildPrice)
	line.Description = fmt.Sprintf("%s (%s)", pkg.Name, line.Description)
	return line, nil
}

func priceTransferItem(entry Entry, day Day, item Item, included []Traveler) (PricedLine, error) {
	if entry.Transfer == nil {
		return PricedLine{}, selectionErrorf("entry %q has no transfer payload", entry.ID)
	}
	tr := entry.Transfer

	if tr.Tickets != nil {
		line := pricePerPerson(included, tr.Tickets.AdultPrice, tr.Tickets.ChildPrice)
		line.Description = "tickets: " + line.Description
		return line, nil
	}

	if item.Transfer == nil || item.Transfer.VehicleType == "" {
		return PricedLine{}, selectionErrorf("transfer item %q has no vehicle selected", entry.ID)
	}

	var vehicle *VehicleOption
	for i := range tr.Vehicles {
		if tr.Vehicles[i].VehicleType == item.Transfer.VehicleType {
			vehicle = &tr.Vehicles[i]
			break
		}
	}
	if vehicle == nil {
		return PricedLine{}, selectionErrorf("unknown vehicle %q for entry %q", item.Transfer.VehicleType, entry.ID)
	}

	if len(included) > vehicle.MaxPassengers {
		return PricedLine{}, &CapacityError{
			VehicleType:   vehicle.VehicleType,
			MaxPassengers: vehicle.MaxPassengers,
			Assigned:      len(included),
		}
	}

	// Surcharges are additive: every period covering the service date
	// applies, overlaps included.
	amount := vehicle.Price
	surcharged := 0
	d := utils.DateOnly(day.Date)
	for _, s := range tr.Surcharges {
		if !d.Before(utils.DateOnly(s.Start)) && !d.After(utils.DateOnly(s.End)) {
			amount += s.Amount
			surcharged++
		}
	}

	desc := fmt.Sprintf("%s (max %d), %d passenger(s)", vehicle.VehicleType, vehicle.MaxPassengers, len(included))
	if surcharged > 0 {
		desc += fmt.Sprintf(", %d surcharge(s)", surcharged)
	}

	return PricedLine{Description: desc, Amount: amount, Shares: map[string]float64{}}, nil
}

func priceFlatItem(entry Entry, item Item, included []Traveler) (PricedLine, error) {
	if entry.Flat == nil {
		return PricedLine{}, selectionErrorf("entry %q has no price payload", entry.ID)
	}
	flat := entry.Flat

	if flat.PerPerson {
		childPrice := flat.Price
		if flat.SecondaryPrice != nil {
			childPrice = *flat.SecondaryPrice
		}
		return pricePerPerson(included, flat.Price, childPrice), nil
	}

	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	unit := entry.Unit
	if unit == "" {
		unit = "unit"
	}
	return PricedLine{
		Description: fmt.Sprintf("%d x %s", qty, unit),
		Amount:      flat.Price * float64(qty),
		Shares:      map[string]float64{},
	}, nil
}

// pricePerPerson charges every included traveler their type's rate and
// records each traveler's own charge as their share.
func pricePerPerson(included []Traveler, adultPrice, childPrice float64) PricedLine {
	shares := make(map[string]float64, len(included))
	total := 0.0
	for _, t := range included {
		price := adultPrice
		if t.Type == TravelerChild {
			price = childPrice
		}
		shares[t.ID] += price
		total += price
	}

	adults, children := countByType(included)
	return PricedLine{
		Description: fmt.Sprintf("%d adult(s), %d child(ren)", adults, children),
		Amount:      total,
		Shares:      shares,
	}
}
