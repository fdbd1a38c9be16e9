package response_models

import "gorm.io/datatypes"

type ItineraryResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	DisplayCurrency string   `json:"display_currency"`
	Budget          *float64 `json:"budget,omitempty"`
	TravelerCount   int      `json:"traveler_count"`
	DayCount        int      `json:"day_count"`
}

type TravelerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ItineraryItemResponse struct {
	ID                  string         `json:"id"`
	EntryID             string         `json:"entry_id"`
	Quantity            int            `json:"quantity"`
	ExcludedTravelerIDs []string       `json:"excluded_traveler_ids,omitempty"`
	Selection           datatypes.JSON `json:"selection"`
}

type ItineraryDayResponse struct {
	ID        string                  `json:"id"`
	DayNumber int                     `json:"day_number"`
	Date      string                  `json:"date"`
	Items     []ItineraryItemResponse `json:"items"`
}

type ItineraryDetailResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	DisplayCurrency string                 `json:"display_currency"`
	Budget          *float64               `json:"budget,omitempty"`
	Travelers       []TravelerResponse     `json:"travelers"`
	Days            []ItineraryDayResponse `json:"days"`
}
