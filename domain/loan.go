package domain

// LoanDetails identifies the amount disbursed to the borrower and the
// payment frequency used to derive periodic rates.
type LoanDetails struct {
	Principal      float64 `json:"principal"`
	PeriodsPerYear int     `json:"periods_per_year"`
}

// LoanSegment is one contiguous block of periods sharing an interest rate
// and a payment policy. When UseFixedPayment is set the block repays
// FixedPayment every period; otherwise the payment is solved from the
// principal left for the block.
type LoanSegment struct {
	PeriodCount              int     `json:"period_count"`
	NominalAnnualRatePercent float64 `json:"annual_rate_percent"`
	FixedPayment             float64 `json:"fixed_payment"`
	PeriodicFee              float64 `json:"periodic_fee"`
	UseFixedPayment          bool    `json:"use_fixed_payment"`
}

// ScheduleOptions carries the cost terms and the ordered segment list for a
// schedule build. At most one segment may leave its payment unsolved.
type ScheduleOptions struct {
	UpfrontCost            float64       `json:"upfront_cost"`
	IncludeCostInPrincipal bool          `json:"include_cost_in_principal"`
	RoundPaymentUp         bool          `json:"round_payment_up"`
	Segments               []LoanSegment `json:"segments"`
}

// PaymentPlanEntry is one period of an amortization schedule, in
// chronological order. RemainingBalance is non-increasing across the plan
// and is exactly zero on the last entry.
type PaymentPlanEntry struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Fee              float64 `json:"fee"`
	Interest         float64 `json:"interest"`
	Total            float64 `json:"total"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// AmortizationResult is the full output of a schedule build. Principal may
// exceed the drawn amount when upfront costs are folded in; Cashflow always
// starts with the negated drawn amount followed by each period's total
// payment, ready for a rate solve.
type AmortizationResult struct {
	DurationPeriods int                `json:"duration_periods"`
	Principal       float64            `json:"principal"`
	TotalPaid       float64            `json:"total_paid"`
	TotalInterest   float64            `json:"total_interest"`
	PaymentPlan     []PaymentPlanEntry `json:"payment_plan"`
	Cashflow        []float64          `json:"cashflow"`
}
