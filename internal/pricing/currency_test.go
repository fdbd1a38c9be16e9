package pricing

import (
	"errors"
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testRates() RateTable {
	return NewRateTable([]ExchangeRate{
		{From: "EUR", To: "USD", Rate: 2},
		{From: "USD", To: "THB", Rate: 3},
		{From: "JPY", To: "VND", Rate: 170},
		{From: "GBP", To: "USD", Rate: 0},
	})
}

func TestResolveSameCurrencyIgnoresMarkup(t *testing.T) {
	conv, err := testRates().Resolve("USD", "USD", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.BaseRate != 1 || conv.FinalRate != 1 || conv.MarkupPercent != 0 {
		t.Fatalf("expected identity conversion, got %+v", conv)
	}
}

func TestResolveDirectAndInverse(t *testing.T) {
	rates := testRates()

	conv, err := rates.Resolve("EUR", "USD", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(conv.BaseRate, 2) {
		t.Fatalf("expected direct rate 2, got %v", conv.BaseRate)
	}

	conv, err = rates.Resolve("USD", "EUR", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(conv.BaseRate, 0.5) {
		t.Fatalf("expected inverse rate 0.5, got %v", conv.BaseRate)
	}
}

func TestResolveTwoHopViaPivot(t *testing.T) {
	conv, err := testRates().Resolve("EUR", "THB", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(conv.BaseRate, 6) {
		t.Fatalf("expected composed rate 6, got %v", conv.BaseRate)
	}
}

func TestResolveDirectBeatsTwoHop(t *testing.T) {
	rates := NewRateTable([]ExchangeRate{
		{From: "EUR", To: "USD", Rate: 2},
		{From: "USD", To: "THB", Rate: 3},
		{From: "EUR", To: "THB", Rate: 7},
	})

	conv, err := rates.Resolve("EUR", "THB", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(conv.BaseRate, 7) {
		t.Fatalf("direct entry must win, got %v", conv.BaseRate)
	}
}

func TestResolveMarkup(t *testing.T) {
	conv, err := testRates().Resolve("EUR", "USD", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(conv.FinalRate, 2.2) {
		t.Fatalf("expected final rate 2.2, got %v", conv.FinalRate)
	}
	if conv.MarkupPercent != 10 {
		t.Fatalf("expected markup 10, got %v", conv.MarkupPercent)
	}
}

func TestResolveUnresolvable(t *testing.T) {
	rates := testRates()

	cases := []struct {
		name string
		from string
		to   string
	}{
		{"no path at all", "VND", "THB"},
		{"unknown currency", "EUR", "CHF"},
		{"zero rate leg never divides", "USD", "GBP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rates.Resolve(tc.from, tc.to, 0)
			var unresolvable *UnresolvableError
			if !errors.As(err, &unresolvable) {
				t.Fatalf("expected UnresolvableError, got %v", err)
			}
			if unresolvable.From != tc.from || unresolvable.To != tc.to {
				t.Fatalf("error names wrong pair: %+v", unresolvable)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	amount, err := testRates().Convert(100, "EUR", "USD", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(amount, 220) {
		t.Fatalf("expected 220, got %v", amount)
	}
}
