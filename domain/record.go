package domain

import "time"

// CalculationRecord is the audit entry stored for every computed schedule
// or quote. It keeps headline figures only, never the full payment plan.
type CalculationRecord struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Principal       float64   `json:"principal"`
	DurationPeriods int       `json:"duration_periods"`
	TotalPaid       float64   `json:"total_paid"`
	AnnualCost      *float64  `json:"annual_cost,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
