package pricing

// LineDetail is the per-item record the caller renders. Amount and
// Shares are in the display currency; a non-empty Error means the item
// was excluded from every total.
type LineDetail struct {
	Day          int
	EntryID      string
	EntryName    string
	Description  string
	Currency     string
	NativeAmount float64
	Amount       float64
	Shares       map[string]float64
	Error        string
}

type CostSummary struct {
	Currency       string
	GrandTotal     float64
	TravelerTotals map[string]float64
	Budget         *float64
	Remaining      *float64
	Lines          []LineDetail
}

// Summarize prices the whole itinerary: every item of every day in
// order, each converted into the display currency with the given
// markup. Itineraries are live drafts, so a failing item is flagged on
// its line and skipped, never fatal; the rest of the trip still prices.
// The walk is a pure function of its inputs: same snapshot in, same
// summary out.
func Summarize(it Itinerary, catalog Catalog, rates RateTable, markupPercent float64) CostSummary {
	summary := CostSummary{
		Currency:       it.DisplayCurrency,
		TravelerTotals: make(map[string]float64, len(it.Travelers)),
		Budget:         it.Budget,
		Lines:          []LineDetail{},
	}
	for _, t := range it.Travelers {
		summary.TravelerTotals[t.ID] = 0
	}

	for _, day := range it.Days {
		for _, item := range day.Items {
			detail := LineDetail{Day: day.Number, EntryID: item.EntryID}

			entry, ok := catalog[item.EntryID]
			if !ok {
				detail.Error = selectionErrorf("catalog entry %q not found", item.EntryID).Error()
				summary.Lines = append(summary.Lines, detail)
				continue
			}
			detail.EntryName = entry.Name
			detail.Currency = entry.Currency

			line, err := PriceLineItem(entry, day, item, it.Travelers)
			if err != nil {
				detail.Error = err.Error()
				summary.Lines = append(summary.Lines, detail)
				continue
			}
			detail.Description = line.Description
			detail.NativeAmount = line.Amount

			conv, err := rates.Resolve(entry.Currency, it.DisplayCurrency, markupPercent)
			if err != nil {
				detail.Error = err.Error()
				summary.Lines = append(summary.Lines, detail)
				continue
			}

			detail.Amount = line.Amount * conv.FinalRate
			detail.Shares = make(map[string]float64, len(line.Shares))
			for id, share := range line.Shares {
				converted := share * conv.FinalRate
				detail.Shares[id] = converted
				summary.TravelerTotals[id] += converted
			}

			summary.GrandTotal += detail.Amount
			summary.Lines = append(summary.Lines, detail)
		}
	}

	if it.Budget != nil {
		remaining := *it.Budget - summary.GrandTotal
		summary.Remaining = &remaining
	}

	return summary
}
