package domain

// ScheduleInput is the request for a full schedule build: the loan details
// plus the cost/segment options. An empty segment list asks the service to
// apply the default options.
type ScheduleInput struct {
	Principal      float64         `json:"principal"`
	PeriodsPerYear int             `json:"periods_per_year"`
	Options        ScheduleOptions `json:"options"`
}

// ScheduleResult bundles the amortization schedule with the derived rates.
// AnnualCost and InternalRate are nil when the solver found no rate; a nil
// rate means "no result", never zero.
type ScheduleResult struct {
	Schedule     AmortizationResult `json:"schedule"`
	InternalRate *float64           `json:"internal_rate,omitempty"`
	AnnualCost   *float64           `json:"annual_cost,omitempty"`
}
