package db_models

// ExchangeRate is a directed pair: 1 FromCurrency = Rate ToCurrency.
// The inverse pair is not required to exist.
type ExchangeRate struct {
	BaseModel
	FromCurrency string `gorm:"size:3;uniqueIndex:idx_rate_pair"`
	ToCurrency   string `gorm:"size:3;uniqueIndex:idx_rate_pair"`
	Rate         float64
}

// RateSettings is a single-row table holding the global markup applied
// on top of every resolved cross-currency rate.
type RateSettings struct {
	BaseModel
	MarkupPercent float64
}
