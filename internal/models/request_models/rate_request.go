package request_models

type UpsertRateRequest struct {
	FromCurrency string  `json:"from_currency" binding:"required,len=3"`
	ToCurrency   string  `json:"to_currency" binding:"required,len=3"`
	Rate         float64 `json:"rate" binding:"required"`
}

type UpdateMarkupRequest struct {
	MarkupPercent float64 `json:"markup_percent"`
}
