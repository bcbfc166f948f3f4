package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// annuityCashflow builds [-principal, pmt, pmt, ...] for a loan fully
// amortized at rate over periods.
func annuityCashflow(principal, rate float64, periods int) []float64 {
	payment := PMT(principal, rate, periods)
	cashflow := make([]float64, periods+1)
	cashflow[0] = -principal
	for i := 1; i <= periods; i++ {
		cashflow[i] = payment
	}
	return cashflow
}

func TestInternalRateOfReturnRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		rate    float64
		periods int
	}{
		{"monthly 9%", 0.0075, 36},
		{"monthly 1.2%", 0.001, 12},
		{"quarterly 8%", 0.02, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cashflow := annuityCashflow(100000, tc.rate, tc.periods)

			got, err := InternalRateOfReturn(cashflow, DefaultRateGuess)

			require.NoError(t, err)
			assert.InDelta(t, tc.rate, got, 1e-8)
		})
	}
}

func TestInternalRateOfReturnRejectsOneSidedCashflow(t *testing.T) {
	_, err := InternalRateOfReturn([]float64{100, 100, 100}, DefaultRateGuess)
	assert.ErrorIs(t, err, ErrCashflowOneSided)

	_, err = InternalRateOfReturn([]float64{-100, -100}, DefaultRateGuess)
	assert.ErrorIs(t, err, ErrCashflowOneSided)

	_, err = InternalRateOfReturn(nil, DefaultRateGuess)
	assert.ErrorIs(t, err, ErrCashflowOneSided)
}

func TestAOPExceedsNominalRateWithFees(t *testing.T) {
	// Fees on top of each payment push the true annual cost above the
	// nominal 9% the cashflow was built from.
	cashflow := annuityCashflow(100000, 0.0075, 36)
	for i := 1; i < len(cashflow); i++ {
		cashflow[i] += 30
	}

	aop, err := AOP(cashflow, DefaultRateGuess, 12)

	require.NoError(t, err)
	assert.Greater(t, aop, EffectiveRate(0.0075, 12))
}

func TestAOPPropagatesSolverError(t *testing.T) {
	_, err := AOP([]float64{1, 2, 3}, DefaultRateGuess, 12)
	assert.ErrorIs(t, err, ErrCashflowOneSided)
}
