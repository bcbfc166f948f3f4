package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"loan-cost/domain"
	"loan-cost/finance"
	"loan-cost/repository"
)

// ScheduleService builds full amortization schedules and derives the
// annual cost figures. It is the only place that decides whether an input
// was seen before; the engine itself recomputes unconditionally.
type ScheduleService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{repo: repo, cache: cache, logger: logger}
}

// BuildSchedule validates the input, builds the schedule and solves the
// loan's annual cost. A solver failure is not an error: the rate fields of
// the result stay nil and the schedule is returned as-is.
func (s *ScheduleService) BuildSchedule(
	ctx context.Context,
	input domain.ScheduleInput,
) (domain.ScheduleResult, error) {

	if err := validateScheduleInput(input); err != nil {
		return domain.ScheduleResult{}, err
	}

	opts := input.Options
	if len(opts.Segments) == 0 {
		opts = finance.DefaultScheduleOptions()
	}

	key, err := cacheKey("schedule", input)
	if err == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.ScheduleResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			s.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
		}
	}

	details := domain.LoanDetails{
		Principal:      input.Principal,
		PeriodsPerYear: input.PeriodsPerYear,
	}

	schedule, err := finance.CFW(details, opts)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	result := domain.ScheduleResult{Schedule: schedule}

	rate, err := finance.IRR(schedule.Cashflow, finance.DefaultRateGuess)
	if err != nil {
		s.logger.Info("no rate found for schedule cashflow", zap.Error(err))
	} else {
		annual := finance.EIR(rate, input.PeriodsPerYear)
		result.InternalRate = &rate
		result.AnnualCost = &annual
	}

	record := domain.CalculationRecord{
		Kind:            "schedule",
		Principal:       input.Principal,
		DurationPeriods: schedule.DurationPeriods,
		TotalPaid:       schedule.TotalPaid,
		AnnualCost:      result.AnnualCost,
	}
	if err := s.repo.Save(record); err != nil {
		s.logger.Warn("failed to save calculation record", zap.Error(err))
	}

	if key != "" {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(payload)); err != nil {
				s.logger.Warn("failed to cache schedule", zap.Error(err))
			}
		}
	}

	return result, nil
}

func validateScheduleInput(input domain.ScheduleInput) error {
	if input.Principal <= 0 {
		return errors.New("invalid principal")
	}
	if input.Principal > MaxPrincipal {
		return fmt.Errorf("principal exceeds the maximum of %.2f", MaxPrincipal)
	}
	if input.PeriodsPerYear < MinPeriodsPerYear || input.PeriodsPerYear > MaxPeriodsPerYear {
		return errors.New("invalid periods per year")
	}

	opts := input.Options
	if opts.UpfrontCost < 0 {
		return errors.New("invalid upfront cost")
	}
	if opts.UpfrontCost > MaxUpfrontCost {
		return fmt.Errorf("upfront cost exceeds the maximum of %.2f", MaxUpfrontCost)
	}
	if len(opts.Segments) > MaxSegments {
		return fmt.Errorf("segment count exceeds the maximum of %d", MaxSegments)
	}

	for i, seg := range opts.Segments {
		if seg.PeriodCount < 0 {
			return fmt.Errorf("segment %d: invalid period count", i+1)
		}
		if seg.PeriodCount == 0 && i != len(opts.Segments)-1 {
			return fmt.Errorf("segment %d: only the final segment may omit a period count", i+1)
		}
		if seg.NominalAnnualRatePercent < 0 {
			return fmt.Errorf("segment %d: invalid rate", i+1)
		}
		if seg.NominalAnnualRatePercent > MaxAnnualRatePercent {
			return fmt.Errorf("segment %d: rate exceeds the maximum of %.2f%%", i+1, MaxAnnualRatePercent)
		}
		if seg.PeriodicFee < 0 || seg.PeriodicFee > MaxPeriodicFee {
			return fmt.Errorf("segment %d: invalid periodic fee", i+1)
		}
		if seg.UseFixedPayment && (seg.FixedPayment <= 0 || seg.FixedPayment > MaxFixedPayment) {
			return fmt.Errorf("segment %d: invalid fixed payment", i+1)
		}
	}

	return nil
}

// cacheKey hashes the canonical JSON encoding of the input.
func cacheKey(prefix string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(payload)), nil
}
