package response_models

type DayAvailabilityResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// MonthAvailabilityResponse is the calendar view for one package. The
// statuses come from the same day-status check pricing uses, so a day
// shown as open here is a day the engine will price.
type MonthAvailabilityResponse struct {
	EntryID string                    `json:"entry_id"`
	Package string                    `json:"package"`
	Year    int                       `json:"year"`
	Month   int                       `json:"month"`
	Days    []DayAvailabilityResponse `json:"days"`
}
