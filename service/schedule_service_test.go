package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loan-cost/domain"
	"loan-cost/repository"
)

type mockCalculationRepository struct {
	saved      []domain.CalculationRecord
	forceError bool
}

func (m *mockCalculationRepository) Save(record domain.CalculationRecord) error {
	if m.forceError {
		return errors.New("save error")
	}
	m.saved = append(m.saved, record)
	return nil
}

func newScheduleService(repo *mockCalculationRepository) *ScheduleService {
	return NewScheduleService(repo, repository.NewMemoryCache(), zap.NewNop())
}

func singleSegmentInput() domain.ScheduleInput {
	return domain.ScheduleInput{
		Principal:      100000,
		PeriodsPerYear: 12,
		Options: domain.ScheduleOptions{
			UpfrontCost:            1800,
			IncludeCostInPrincipal: true,
			Segments: []domain.LoanSegment{
				{PeriodCount: 24, NominalAnnualRatePercent: 10, PeriodicFee: 25},
			},
		},
	}
}

func TestBuildSchedule_Valid(t *testing.T) {
	repo := &mockCalculationRepository{}
	svc := newScheduleService(repo)

	result, err := svc.BuildSchedule(context.Background(), singleSegmentInput())

	require.NoError(t, err)
	assert.Equal(t, 24, result.Schedule.DurationPeriods)
	assert.Equal(t, 101800.0, result.Schedule.Principal)

	require.NotNil(t, result.AnnualCost, "a healthy loan must yield an annual cost")
	assert.Greater(t, *result.AnnualCost, 0.10, "fees and costs push the annual cost above the nominal rate")

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "schedule", repo.saved[0].Kind)
}

func TestBuildSchedule_CacheShortCircuits(t *testing.T) {
	repo := &mockCalculationRepository{}
	svc := newScheduleService(repo)

	first, err := svc.BuildSchedule(context.Background(), singleSegmentInput())
	require.NoError(t, err)

	second, err := svc.BuildSchedule(context.Background(), singleSegmentInput())
	require.NoError(t, err)

	assert.Equal(t, first.Schedule.TotalPaid, second.Schedule.TotalPaid)
	assert.Len(t, repo.saved, 1, "a cached result must not be recorded again")
}

func TestBuildSchedule_DefaultOptions(t *testing.T) {
	repo := &mockCalculationRepository{}
	svc := newScheduleService(repo)

	result, err := svc.BuildSchedule(context.Background(), domain.ScheduleInput{
		Principal:      1200,
		PeriodsPerYear: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, result.Schedule.DurationPeriods)
}

func TestBuildSchedule_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input domain.ScheduleInput
	}{
		{"zero principal", domain.ScheduleInput{PeriodsPerYear: 12}},
		{"excessive principal", domain.ScheduleInput{Principal: MaxPrincipal + 1, PeriodsPerYear: 12}},
		{"zero periods per year", domain.ScheduleInput{Principal: 1000}},
		{"negative cost", domain.ScheduleInput{
			Principal:      1000,
			PeriodsPerYear: 12,
			Options:        domain.ScheduleOptions{UpfrontCost: -1},
		}},
		{"negative segment rate", domain.ScheduleInput{
			Principal:      1000,
			PeriodsPerYear: 12,
			Options: domain.ScheduleOptions{
				Segments: []domain.LoanSegment{{PeriodCount: 12, NominalAnnualRatePercent: -1}},
			},
		}},
		{"open-ended segment not last", domain.ScheduleInput{
			Principal:      1000,
			PeriodsPerYear: 12,
			Options: domain.ScheduleOptions{
				Segments: []domain.LoanSegment{
					{FixedPayment: 100, UseFixedPayment: true},
					{PeriodCount: 12},
				},
			},
		}},
		{"fixed payment without amount", domain.ScheduleInput{
			Principal:      1000,
			PeriodsPerYear: 12,
			Options: domain.ScheduleOptions{
				Segments: []domain.LoanSegment{{PeriodCount: 12, UseFixedPayment: true}},
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockCalculationRepository{}
			svc := newScheduleService(repo)

			_, err := svc.BuildSchedule(context.Background(), tc.input)

			assert.Error(t, err)
			assert.Empty(t, repo.saved, "nothing may be recorded for rejected input")
		})
	}
}

func TestBuildSchedule_RepositoryFailureIsNotFatal(t *testing.T) {
	repo := &mockCalculationRepository{forceError: true}
	svc := newScheduleService(repo)

	_, err := svc.BuildSchedule(context.Background(), singleSegmentInput())

	assert.NoError(t, err, "audit trail failures must not fail the request")
}
