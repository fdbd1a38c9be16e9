package pricing

// pivotCurrency is the designated intermediate for two-hop resolution.
const pivotCurrency = "USD"

// ExchangeRate is a directed pair: 1 unit of From = Rate units of To.
// From != To and Rate > 0 are enforced at the data-entry boundary.
type ExchangeRate struct {
	From string
	To   string
	Rate float64
}

// RateTable is a sparse snapshot of directed rates. Not every pair, or
// its inverse, is guaranteed to exist.
type RateTable struct {
	direct map[[2]string]float64
}

func NewRateTable(rates []ExchangeRate) RateTable {
	direct := make(map[[2]string]float64, len(rates))
	for _, r := range rates {
		direct[[2]string{r.From, r.To}] = r.Rate
	}
	return RateTable{direct: direct}
}

// Conversion is a resolved rate between two currencies. FinalRate is
// BaseRate with the markup applied; MarkupPercent records what was
// actually applied (always 0 for a same-currency conversion).
type Conversion struct {
	BaseRate      float64
	FinalRate     float64
	MarkupPercent float64
}

// leg resolves one hop: a direct entry first, then the inverse of the
// opposite entry. Zero rates are treated as absent so no path ever
// divides by zero.
func (t RateTable) leg(from, to string) (float64, bool) {
	if r, ok := t.direct[[2]string{from, to}]; ok && r != 0 {
		return r, true
	}
	if r, ok := t.direct[[2]string{to, from}]; ok && r != 0 {
		return 1 / r, true
	}
	return 0, false
}

// Resolve finds a rate from one currency to another and applies the
// markup. Search order is fixed: a direct entry, the inverse of the
// opposite entry, then a two-hop path through the pivot currency with
// each hop resolved independently. Direct data always wins over a
// derivable path.
func (t RateTable) Resolve(from, to string, markupPercent float64) (Conversion, error) {
	if from == to {
		return Conversion{BaseRate: 1, FinalRate: 1, MarkupPercent: 0}, nil
	}

	base, ok := t.leg(from, to)
	if !ok && from != pivotCurrency && to != pivotCurrency {
		toPivot, ok1 := t.leg(from, pivotCurrency)
		fromPivot, ok2 := t.leg(pivotCurrency, to)
		if ok1 && ok2 {
			base, ok = toPivot*fromPivot, true
		}
	}
	if !ok {
		return Conversion{}, &UnresolvableError{From: from, To: to}
	}

	return Conversion{
		BaseRate:      base,
		FinalRate:     base * (1 + markupPercent/100),
		MarkupPercent: markupPercent,
	}, nil
}

// Convert applies the resolved final rate to an amount.
func (t RateTable) Convert(amount float64, from, to string, markupPercent float64) (float64, error) {
	conv, err := t.Resolve(from, to, markupPercent)
	if err != nil {
		return 0, err
	}
	return amount * conv.FinalRate, nil
}
