package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"loan-cost/domain"
	"loan-cost/finance"
	"loan-cost/repository"
)

// QuoteService answers single fixed-payment quotes without building a
// schedule.
type QuoteService struct {
	repo   repository.CalculationRepository
	logger *zap.Logger
}

func NewQuoteService(repo repository.CalculationRepository, logger *zap.Logger) *QuoteService {
	return &QuoteService{repo: repo, logger: logger}
}

// Quote computes the fixed payment that amortizes the principal over the
// requested term, plus the totals it implies.
func (s *QuoteService) Quote(input domain.QuoteInput) (domain.QuoteResult, error) {
	if input.Principal <= 0 {
		return domain.QuoteResult{}, errors.New("invalid principal")
	}
	if input.Principal > MaxPrincipal {
		return domain.QuoteResult{}, fmt.Errorf("principal exceeds the maximum of %.2f", MaxPrincipal)
	}
	if input.AnnualRatePercent < 0 || input.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.QuoteResult{}, errors.New("invalid rate")
	}
	if input.TermPeriods <= 0 {
		return domain.QuoteResult{}, errors.New("invalid term")
	}
	if input.PeriodsPerYear < MinPeriodsPerYear || input.PeriodsPerYear > MaxPeriodsPerYear {
		return domain.QuoteResult{}, errors.New("invalid periods per year")
	}

	periodicRate := input.AnnualRatePercent / 100 / float64(input.PeriodsPerYear)
	payment := finance.PMT(input.Principal, periodicRate, input.TermPeriods)
	total := payment * float64(input.TermPeriods)

	result := domain.QuoteResult{
		Payment:       payment,
		TotalPaid:     total,
		TotalInterest: total - input.Principal,
	}

	record := domain.CalculationRecord{
		Kind:            "quote",
		Principal:       input.Principal,
		DurationPeriods: input.TermPeriods,
		TotalPaid:       total,
	}
	if err := s.repo.Save(record); err != nil {
		s.logger.Warn("failed to save calculation record", zap.Error(err))
	}

	return result, nil
}
