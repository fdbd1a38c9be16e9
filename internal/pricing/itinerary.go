package pricing

import "time"

type TravelerType string

const (
	TravelerAdult TravelerType = "adult"
	TravelerChild TravelerType = "child"
)

type Traveler struct {
	ID   string
	Name string
	Type TravelerType
}

// Itinerary is the in-memory snapshot the engine prices. It is plain
// data: the storage layer maps its own records into this shape.
type Itinerary struct {
	DisplayCurrency string
	Budget          *float64
	Travelers       []Traveler
	Days            []Day
}

type Day struct {
	Number int
	Date   time.Time
	Items  []Item
}

// Item references a catalog entry by id. At most one selection pointer
// is set, matching the entry's category; meal/misc items need none.
type Item struct {
	EntryID  string
	Excluded []string
	Quantity int

	Hotel    *HotelSelection
	Activity *ActivitySelection
	Transfer *TransferSelection
}

// HotelSelection books one or more room types for the stay starting on
// the item's day. Stay length is checkout day minus arrival day.
type HotelSelection struct {
	CheckOut time.Time
	Bookings []RoomBooking
}

type RoomBooking struct {
	RoomType    string
	Rooms       int
	ExtraBed    bool
	TravelerIDs []string
}

type ActivitySelection struct {
	Package string
}

type TransferSelection struct {
	VehicleType string
}

func (i Item) excludes(travelerID string) bool {
	for _, id := range i.Excluded {
		if id == travelerID {
			return true
		}
	}
	return false
}

// includedTravelers filters the roster down to travelers counted for
// this item.
func (i Item) includedTravelers(travelers []Traveler) []Traveler {
	out := make([]Traveler, 0, len(travelers))
	for _, t := range travelers {
		if !i.excludes(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

func countByType(travelers []Traveler) (adults, children int) {
	for _, t := range travelers {
		if t.Type == TravelerChild {
			children++
		} else {
			adults++
		}
	}
	return adults, children
}
