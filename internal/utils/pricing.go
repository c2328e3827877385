package utils

import (
	"math"
	"time"

	"swipestay-backend/internal/domain"
)

// TaxRate is the flat tax applied to every booking subtotal. Policy
// constant, not configurable.
const TaxRate = 0.12

// Quote is the price breakdown for a stay. Subtotal, Tax and Total are each
// computed independently from nights x rate and rounded to cents, so no
// field inherits another field's rounding error.
type Quote struct {
	Nights   int     `json:"nights"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Round2 rounds a dollar amount to cents.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// NightCount returns the number of occupied nights in the half-open window
// [start, end). Both dates are calendar dates; any time-of-day component is
// discarded.
func NightCount(start, end time.Time) int {
	start = Midnight(start)
	end = Midnight(end)
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// Midnight truncates t to the start of its calendar day, preserving location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateQuote prices a stay: nights x nightlyRate plus tax. Returns
// domain.ErrInvalidRange when the window contains no nights.
func CalculateQuote(nightlyRate float64, start, end time.Time) (Quote, error) {
	nights := NightCount(start, end)
	if nights <= 0 {
		return Quote{}, domain.ErrInvalidRange
	}

	subtotal := float64(nights) * nightlyRate
	return Quote{
		Nights:   nights,
		Subtotal: Round2(subtotal),
		Tax:      Round2(subtotal * TaxRate),
		Total:    Round2(subtotal + subtotal*TaxRate),
	}, nil
}
