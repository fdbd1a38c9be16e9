package response_models

import "gorm.io/datatypes"

type CatalogEntryResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Currency string         `json:"currency"`
	Unit     string         `json:"unit,omitempty"`
	Notes    string         `json:"notes,omitempty"`
	Payload  datatypes.JSON `json:"payload"`
}

type RateResponse struct {
	ID           string  `json:"id"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Rate         float64 `json:"rate"`
}

type RateSettingsResponse struct {
	MarkupPercent float64 `json:"markup_percent"`
}
