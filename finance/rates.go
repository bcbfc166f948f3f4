// Package finance implements the loan cost engine: time-value primitives,
// cashflow valuation, a Newton-Raphson rate solver and the amortization
// schedule generator. Everything in this package is a pure function of its
// arguments; nothing here logs, blocks or keeps state between calls.
package finance

import "math"

// EffectiveRate converts a periodic rate to its effective annual
// equivalent. A periodsPerYear of zero selects continuous compounding.
func EffectiveRate(periodicRate float64, periodsPerYear int) float64 {
	if periodsPerYear > 0 {
		return math.Pow(1+periodicRate, float64(periodsPerYear)) - 1
	}
	return math.Exp(periodicRate) - 1
}

// AnnuityFactor returns the fraction of principal that one fixed payment
// represents when amortizing over periodCount periods at periodicRate.
// A zero periodCount yields 1 so degenerate segments do not divide by
// zero; real schedules must not rely on that branch.
func AnnuityFactor(periodicRate float64, periodCount int) float64 {
	if periodCount == 0 {
		return 1
	}
	if periodicRate == 0 {
		return 1 / float64(periodCount)
	}
	return periodicRate / (1 - math.Pow(1+periodicRate, float64(-periodCount)))
}
