package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	Title           string
	DisplayCurrency string `gorm:"size:3"`
	Budget          *float64

	Travelers []Traveler     `gorm:"constraint:OnDelete:CASCADE"`
	Days      []ItineraryDay `gorm:"constraint:OnDelete:CASCADE"`
}

type Traveler struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	Name        string
	Type        string `gorm:"default:adult"` // "adult" | "child"
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	DayNumber   int
	Date        time.Time

	Items []ItineraryItem `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE"`
}

// ItineraryItem references a catalog entry and carries the concrete
// selection (room bookings, chosen package or vehicle) as jsonb plus
// the per-item traveler exclusions.
type ItineraryItem struct {
	BaseModel
	DayID               uuid.UUID `gorm:"index"`
	EntryID             uuid.UUID `gorm:"index"`
	Position            int
	Quantity            int            `gorm:"default:1"`
	ExcludedTravelerIDs pq.StringArray `gorm:"type:text[]"`
	Selection           datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
