package domain

// QuoteInput asks for a single fixed-payment quote without building a
// schedule.
type QuoteInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermPeriods       int     `json:"term_periods"`
	PeriodsPerYear    int     `json:"periods_per_year"`
}

// QuoteResult is the headline view of a quote.
type QuoteResult struct {
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}
