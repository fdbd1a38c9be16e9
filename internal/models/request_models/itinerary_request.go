package request_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type TravelerRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"` // "adult" (default) | "child"
}

type CreateItineraryRequest struct {
	Title           string            `json:"title" binding:"required"`
	DisplayCurrency string            `json:"display_currency" binding:"required,len=3"`
	Budget          *float64          `json:"budget"`
	StartDate       string            `json:"start_date" binding:"required"`
	DayCount        int               `json:"day_count" binding:"required,min=1"`
	Travelers       []TravelerRequest `json:"travelers" binding:"required,min=1"`
}

type AddItemRequest struct {
	EntryID             uuid.UUID       `json:"entry_id" binding:"required"`
	Quantity            int             `json:"quantity"`
	ExcludedTravelerIDs []string        `json:"excluded_traveler_ids"`
	Selection           json.RawMessage `json:"selection"`
}
