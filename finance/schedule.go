package finance

import (
	"errors"
	"math"

	"loan-cost/domain"
)

const (
	// MaxSchedulePeriods caps the month-by-month simulation so a segment
	// whose payment does not cover interest still terminates.
	MaxSchedulePeriods = 180
	// balanceEpsilon is the residual below which the loan counts as repaid;
	// the closing period absorbs it so the balance lands on exactly zero.
	balanceEpsilon = 0.01
)

// ErrMultipleUnresolvedSegments reports a segment list with more than one
// unsolved payment. The principal split meets in the middle from both ends
// of the schedule and can bridge exactly one unknown block.
var ErrMultipleUnresolvedSegments = errors.New("at most one segment may leave its payment unsolved")

// resolvedSegment carries the per-period figures derived for one block.
type resolvedSegment struct {
	periodicRate float64
	periodicFee  float64
	payment      float64
	endPeriod    int
}

// BuildAmortizationSchedule resolves each segment's payment, then simulates
// the loan period by period. Principal folds in the upfront cost when the
// options say so; the cashflow's first element is always the negated drawn
// amount. Degenerate numeric input flows through the arithmetic and may
// yield NaN or Inf figures rather than an error.
func BuildAmortizationSchedule(details domain.LoanDetails, opts domain.ScheduleOptions) (domain.AmortizationResult, error) {
	principal := details.Principal
	if opts.IncludeCostInPrincipal {
		principal += opts.UpfrontCost
	}

	segments, err := resolveSegments(principal, details.PeriodsPerYear, opts)
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	return simulate(details.Principal, principal, opts, segments), nil
}

// resolveSegments turns the raw segment list into per-period figures,
// solving the one unknown payment via a two-sided principal propagation:
// the boundary principal between blocks is known at the very start (the
// full principal) and at the very end (zero), so walking inward from both
// ends brackets the unsolved block without an iterative solve.
func resolveSegments(principal float64, periodsPerYear int, opts domain.ScheduleOptions) ([]resolvedSegment, error) {
	n := len(opts.Segments)

	unresolved := 0
	for _, seg := range opts.Segments {
		if !seg.UseFixedPayment {
			unresolved++
		}
	}
	if unresolved > 1 {
		return nil, ErrMultipleUnresolvedSegments
	}

	rates := make([]float64, n)
	factors := make([]float64, n)
	deltas := make([]float64, n)
	resolved := make([]bool, n)
	for i, seg := range opts.Segments {
		rates[i] = seg.NominalAnnualRatePercent / 100 / float64(periodsPerYear)
		factors[i] = AnnuityFactor(rates[i], seg.PeriodCount)
		if seg.UseFixedPayment {
			deltas[i] = seg.FixedPayment / factors[i]
			resolved[i] = true
		}
	}

	// Boundary principals, one per segment edge: walk forward from the full
	// principal and backward from zero, stopping at the unsolved block.
	boundaries := make([]float64, 0, n+1)
	forward := principal
	boundaries = append(boundaries, forward)
	for i := 0; i < n && resolved[i]; i++ {
		forward = (forward - deltas[i]) * compound(rates[i], opts.Segments[i].PeriodCount)
		boundaries = append(boundaries, forward)
	}

	tail := make([]float64, 0, n+1)
	backward := 0.0
	tail = append(tail, backward)
	for i := n - 1; i >= 0 && resolved[i]; i-- {
		backward = (deltas[i] + backward) / compound(rates[i], opts.Segments[i].PeriodCount)
		tail = append(tail, backward)
	}
	for i := len(tail) - 1; i >= 0; i-- {
		boundaries = append(boundaries, tail[i])
	}

	segments := make([]resolvedSegment, n)
	end := 0
	for i, seg := range opts.Segments {
		payment := seg.FixedPayment
		if !seg.UseFixedPayment {
			start := boundaries[i]
			stop := boundaries[i+1]
			payment = (start - stop/compound(rates[i], seg.PeriodCount)) * factors[i]
			if opts.RoundPaymentUp {
				payment = math.Ceil(payment)
			}
		}

		end += seg.PeriodCount
		segments[i] = resolvedSegment{
			periodicRate: rates[i],
			periodicFee:  seg.PeriodicFee,
			payment:      payment,
			endPeriod:    end,
		}
	}

	// An open-ended tail: a final segment without a period count runs until
	// the balance clears or the simulation cap is hit.
	if n > 0 && opts.Segments[n-1].PeriodCount == 0 {
		segments[n-1].endPeriod = MaxSchedulePeriods
	}

	return segments, nil
}

func compound(periodicRate float64, periodCount int) float64 {
	return math.Pow(1+periodicRate, float64(periodCount))
}

// simulate amortizes the balance period by period using declining-balance
// interest. drawn is the amount actually paid out to the borrower, which
// seeds the cashflow; principal may additionally carry folded-in costs.
func simulate(drawn, principal float64, opts domain.ScheduleOptions, segments []resolvedSegment) domain.AmortizationResult {
	balance := principal
	plan := make([]domain.PaymentPlanEntry, 0, len(segments)*12)
	cashflow := make([]float64, 1, len(segments)*12+1)
	cashflow[0] = -drawn

	var totalPaid, totalInterest float64

	for period := 1; period <= MaxSchedulePeriods && balance > 0; period++ {
		seg, ok := segmentFor(segments, period)
		if !ok {
			break
		}

		interest := seg.periodicRate * balance
		fee := seg.periodicFee
		if period == 1 && !opts.IncludeCostInPrincipal {
			fee += opts.UpfrontCost
		}

		repaid := seg.payment - interest
		total := seg.payment + fee
		if balance-repaid >= balanceEpsilon {
			balance -= repaid
		} else {
			// Closing period: repay the remaining balance instead of the
			// nominal payment so no residual cents survive.
			repaid = balance
			total = balance + interest + fee
			balance = 0
		}

		plan = append(plan, domain.PaymentPlanEntry{
			Period:           period,
			Principal:        repaid,
			Fee:              fee,
			Interest:         interest,
			Total:            total,
			RemainingBalance: balance,
		})
		cashflow = append(cashflow, total)
		totalPaid += total
		totalInterest += interest
	}

	return domain.AmortizationResult{
		DurationPeriods: len(plan),
		Principal:       principal,
		TotalPaid:       totalPaid,
		TotalInterest:   totalInterest,
		PaymentPlan:     plan,
		Cashflow:        cashflow,
	}
}

// segmentFor finds the segment covering the given period, scanning in
// order. Periods past the last segment's end report no segment, which ends
// the simulation.
func segmentFor(segments []resolvedSegment, period int) (resolvedSegment, bool) {
	for _, seg := range segments {
		if period <= seg.endPeriod {
			return seg, true
		}
	}
	return resolvedSegment{}, false
}
