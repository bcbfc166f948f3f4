package finance

import "math"

// NetPresentValue discounts a signed cashflow at periodicRate. The first
// element is the time-zero disbursement and enters unscaled; a
// single-element cashflow is returned as-is.
func NetPresentValue(cashflow []float64, periodicRate float64) float64 {
	npv := cashflow[0]
	for i := 1; i < len(cashflow); i++ {
		npv += cashflow[i] / math.Pow(1+periodicRate, float64(i))
	}
	return npv
}

// NetPresentValueDerivative is d(NPV)/d(rate), used as the Newton
// denominator in the rate solver.
func NetPresentValueDerivative(cashflow []float64, periodicRate float64) float64 {
	var d float64
	for i := 1; i < len(cashflow); i++ {
		d -= float64(i) * cashflow[i] / math.Pow(1+periodicRate, float64(i+1))
	}
	return d
}
