package pricing

import "time"

type Category string

const (
	CategoryHotel    Category = "hotel"
	CategoryActivity Category = "activity"
	CategoryTransfer Category = "transfer"
	CategoryMeal     Category = "meal"
	CategoryMisc     Category = "misc"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHotel, CategoryActivity, CategoryTransfer, CategoryMeal, CategoryMisc:
		return true
	}
	return false
}

// Entry is one priced service from the catalog. Exactly one payload
// pointer is set, matching Category; the resolver dispatches on it
// instead of null-checking fields that belong to other categories.
type Entry struct {
	ID       string
	Name     string
	Category Category
	Currency string
	Unit     string
	Notes    string

	Hotel    *HotelPayload
	Activity *ActivityPayload
	Transfer *TransferPayload
	Flat     *FlatPayload
}

// Catalog is an in-memory snapshot keyed by entry id.
type Catalog map[string]Entry

type HotelPayload struct {
	RoomTypes []RoomType
}

type RoomType struct {
	Name           string
	AllowsExtraBed bool
	Seasons        []SeasonalPrice
}

// SeasonalPrice is a date-ranged nightly rate. Ranges are inclusive on
// both ends and may overlap; see seasonFor for the tie-break.
type SeasonalPrice struct {
	Start        time.Time
	End          time.Time
	NightlyRate  float64
	ExtraBedRate *float64
}

type ActivityPayload struct {
	Packages []Package
}

type Package struct {
	Name       string
	AdultPrice float64
	ChildPrice float64
	Schedule   Schedule
}

// TransferPayload prices either per ticket or per vehicle: Tickets set
// means ticket mode, otherwise a vehicle from Vehicles must be chosen.
type TransferPayload struct {
	Tickets    *TicketPricing
	Vehicles   []VehicleOption
	Surcharges []SurchargePeriod
}

type TicketPricing struct {
	AdultPrice float64
	ChildPrice float64
}

type VehicleOption struct {
	VehicleType   string
	Price         float64
	MaxPassengers int
}

// SurchargePeriod adds a fixed amount to a vehicle transfer when the
// service date falls inside [Start, End]. Overlapping periods all apply.
type SurchargePeriod struct {
	Start  time.Time
	End    time.Time
	Amount float64
}

// FlatPayload covers meal and misc entries. SecondaryPrice, when set,
// is the child rate in per-person mode.
type FlatPayload struct {
	Price          float64
	SecondaryPrice *float64
	PerPerson      bool
}
