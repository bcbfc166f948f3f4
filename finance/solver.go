package finance

import (
	"errors"
	"math"
)

const (
	// MaxSolverIterations bounds the Newton loop so it terminates on any
	// input, converging or not.
	MaxSolverIterations = 50
	// SolverTolerance is the convergence threshold, applied to both the
	// rate step and the residual net present value.
	SolverTolerance = 1e-10
	// DefaultRateGuess seeds the solver when the caller has no better
	// starting point.
	DefaultRateGuess = 0.1
)

var (
	// ErrCashflowOneSided reports a cashflow without both a positive and a
	// negative entry; no rate can zero its net present value.
	ErrCashflowOneSided = errors.New("cashflow needs both a positive and a negative entry")

	// ErrNoConvergence reports that the solver ran out of iterations
	// without settling on a rate.
	ErrNoConvergence = errors.New("rate solver did not converge")
)

// InternalRateOfReturn finds the periodic rate at which the cashflow's net
// present value is zero, using Newton's method from guess. The rate is
// meaningless when err != nil; callers must treat that as "no rate found",
// never as zero. A pathological cashflow can still drive the derivative to
// zero mid-iteration, which surfaces as NaN and the non-convergence error.
func InternalRateOfReturn(cashflow []float64, guess float64) (float64, error) {
	var hasPositive, hasNegative bool
	for _, v := range cashflow {
		if v > 0 {
			hasPositive = true
		} else if v < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, ErrCashflowOneSided
	}

	rate := guess
	for i := 0; i < MaxSolverIterations; i++ {
		npv := NetPresentValue(cashflow, rate)
		step := npv / NetPresentValueDerivative(cashflow, rate)
		rate -= step
		if math.Abs(step) < SolverTolerance || math.Abs(npv) < SolverTolerance {
			return rate, nil
		}
	}
	return 0, ErrNoConvergence
}
