package domain

// RatesInput carries a caller-built cashflow for direct valuation. Guess
// doubles as the discount rate for the net-present-value figure and the
// starting point for the rate solve.
type RatesInput struct {
	Cashflow       []float64 `json:"cashflow"`
	Guess          float64   `json:"guess"`
	PeriodsPerYear int       `json:"periods_per_year"`
}

// RatesResult reports the valuation of a cashflow. InternalRate is the
// solved periodic rate and AnnualCost its effective annual equivalent; both
// are nil when no rate could be found.
type RatesResult struct {
	NetPresentValue float64  `json:"net_present_value"`
	InternalRate    *float64 `json:"internal_rate,omitempty"`
	AnnualCost      *float64 `json:"annual_cost,omitempty"`
}
