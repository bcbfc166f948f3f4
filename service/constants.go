package service

const (
	MaxPrincipal         = 1_000_000_000.0 // hard ceiling on any loan amount
	MaxAnnualRatePercent = 1000.0
	MaxUpfrontCost       = 100_000_000.0
	MaxFixedPayment      = 100_000_000.0
	MaxPeriodicFee       = 1_000_000.0

	MaxSegments       = 12
	MinPeriodsPerYear = 1
	MaxPeriodsPerYear = 366

	// MaxCashflowEntries bounds the raw-cashflow endpoint so a request
	// cannot feed an arbitrarily long series into the solver.
	MaxCashflowEntries = 2048
)
