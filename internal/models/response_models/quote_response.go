package response_models

type QuoteLineResponse struct {
	Day          int                `json:"day"`
	EntryID      string             `json:"entry_id"`
	EntryName    string             `json:"entry_name,omitempty"`
	Description  string             `json:"description,omitempty"`
	Currency     string             `json:"currency,omitempty"`
	NativeAmount float64            `json:"native_amount"`
	Amount       float64            `json:"amount"`
	Shares       map[string]float64 `json:"shares,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type QuoteResponse struct {
	ItineraryID    string              `json:"itinerary_id"`
	Currency       string              `json:"currency"`
	MarkupPercent  float64             `json:"markup_percent"`
	GrandTotal     float64             `json:"grand_total"`
	TravelerTotals map[string]float64  `json:"traveler_totals"`
	Budget         *float64            `json:"budget,omitempty"`
	Remaining      *float64            `json:"remaining,omitempty"`
	Lines          []QuoteLineResponse `json:"lines"`
}
