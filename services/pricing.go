// Package services provides the bid ledger, pricing calculations, profile
// store and document assembly/export for the bid generator.
package services

import "math"

// Round2 rounds a value to 2 decimal places (cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PricingSummary holds the totals derived from a priced ledger. Subtotal
// and TotalWithTax are kept at full precision; rounding to cents happens
// only at display time.
type PricingSummary struct {
	Subtotal     float64
	TaxPercent   float64
	TotalWithTax float64
}

// Summarize computes the subtotal and tax-inclusive total for a ledger.
// Line totals are already rounded to cents when priced, so the subtotal is
// an exact sum with no further rounding. taxPercent must be validated to
// [0, 100] at the input boundary before calling.
func Summarize(items []LineItem, taxPercent float64) PricingSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	return PricingSummary{
		Subtotal:     subtotal,
		TaxPercent:   taxPercent,
		TotalWithTax: subtotal * (1 + taxPercent/100),
	}
}
