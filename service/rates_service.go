package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"loan-cost/domain"
	"loan-cost/finance"
)

// RatesService exposes the valuation operations directly for callers that
// build their own cashflows.
type RatesService struct {
	logger *zap.Logger
}

func NewRatesService(logger *zap.Logger) *RatesService {
	return &RatesService{logger: logger}
}

// Rates values the cashflow at the guess rate and attempts a rate solve.
// A cashflow the solver cannot price leaves the rate fields nil.
func (s *RatesService) Rates(input domain.RatesInput) (domain.RatesResult, error) {
	if len(input.Cashflow) == 0 {
		return domain.RatesResult{}, errors.New("empty cashflow")
	}
	if len(input.Cashflow) > MaxCashflowEntries {
		return domain.RatesResult{}, fmt.Errorf("cashflow exceeds the maximum of %d entries", MaxCashflowEntries)
	}
	if input.PeriodsPerYear < 0 || input.PeriodsPerYear > MaxPeriodsPerYear {
		return domain.RatesResult{}, errors.New("invalid periods per year")
	}

	guess := input.Guess
	if guess == 0 {
		guess = finance.DefaultRateGuess
	}

	result := domain.RatesResult{
		NetPresentValue: finance.NPV(input.Cashflow, guess),
	}

	rate, err := finance.IRR(input.Cashflow, guess)
	if err != nil {
		s.logger.Info("no rate found for cashflow", zap.Error(err))
		return result, nil
	}

	annual := finance.EIR(rate, input.PeriodsPerYear)
	result.InternalRate = &rate
	result.AnnualCost = &annual

	return result, nil
}
