package finance

import "loan-cost/domain"

// The facade names mirror the vocabulary of the consumer-credit domain:
// AOP is the annual cost of the loan including fees (the Danish ÅOP
// figure), EIR the bare effective interest rate conversion, PMT a fixed
// payment quote and CFW the full schedule build. Every operation is
// stateless and reproducible from its arguments alone.

// AOP solves the cashflow's internal rate of return and annualizes it,
// yielding the true yearly cost of the loan as a fraction (0.124 = 12.4%).
func AOP(cashflow []float64, guess float64, periodsPerYear int) (float64, error) {
	rate, err := InternalRateOfReturn(cashflow, guess)
	if err != nil {
		return 0, err
	}
	return EffectiveRate(rate, periodsPerYear), nil
}

// NPV values a cashflow at the given periodic rate.
func NPV(cashflow []float64, periodicRate float64) float64 {
	return NetPresentValue(cashflow, periodicRate)
}

// IRR solves the periodic rate that zeroes the cashflow's present value.
func IRR(cashflow []float64, guess float64) (float64, error) {
	return InternalRateOfReturn(cashflow, guess)
}

// EIR annualizes a periodic rate.
func EIR(periodicRate float64, periodsPerYear int) float64 {
	return EffectiveRate(periodicRate, periodsPerYear)
}

// PMT quotes the fixed payment that amortizes principal over periodCount
// periods at periodicRate.
func PMT(principal, periodicRate float64, periodCount int) float64 {
	return principal * AnnuityFactor(periodicRate, periodCount)
}

// CFW builds the full amortization schedule.
func CFW(details domain.LoanDetails, opts domain.ScheduleOptions) (domain.AmortizationResult, error) {
	return BuildAmortizationSchedule(details, opts)
}

// DefaultScheduleOptions is the explicit fallback applied by callers when
// no options are supplied: no costs, no rounding, and a single solved
// twelve-period interest-free block.
func DefaultScheduleOptions() domain.ScheduleOptions {
	return domain.ScheduleOptions{
		Segments: []domain.LoanSegment{
			{PeriodCount: 12},
		},
	}
}
