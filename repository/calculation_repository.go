package repository

import "loan-cost/domain"

// CalculationRepository keeps an audit trail of computed results.
type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
}
