package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"loan-cost/domain"
)

// round2 rounds a money amount for display. The engine works at full
// float64 precision; only the response view is rounded.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type planEntryResponse struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Fee              float64 `json:"fee"`
	Interest         float64 `json:"interest"`
	Total            float64 `json:"total"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type scheduleResponse struct {
	DurationPeriods int                 `json:"duration_periods"`
	Principal       float64             `json:"principal"`
	TotalPaid       float64             `json:"total_paid"`
	TotalInterest   float64             `json:"total_interest"`
	PaymentPlan     []planEntryResponse `json:"payment_plan"`
	InternalRate    *float64            `json:"internal_rate,omitempty"`
	AnnualCost      *float64            `json:"annual_cost,omitempty"`
}

func toScheduleResponse(result domain.ScheduleResult) scheduleResponse {
	plan := make([]planEntryResponse, 0, len(result.Schedule.PaymentPlan))
	for _, entry := range result.Schedule.PaymentPlan {
		plan = append(plan, planEntryResponse{
			Period:           entry.Period,
			Principal:        round2(entry.Principal),
			Fee:              round2(entry.Fee),
			Interest:         round2(entry.Interest),
			Total:            round2(entry.Total),
			RemainingBalance: round2(entry.RemainingBalance),
		})
	}

	return scheduleResponse{
		DurationPeriods: result.Schedule.DurationPeriods,
		Principal:       round2(result.Schedule.Principal),
		TotalPaid:       round2(result.Schedule.TotalPaid),
		TotalInterest:   round2(result.Schedule.TotalInterest),
		PaymentPlan:     plan,
		InternalRate:    result.InternalRate,
		AnnualCost:      result.AnnualCost,
	}
}

type quoteResponse struct {
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

func toQuoteResponse(result domain.QuoteResult) quoteResponse {
	return quoteResponse{
		Payment:       round2(result.Payment),
		TotalPaid:     round2(result.TotalPaid),
		TotalInterest: round2(result.TotalInterest),
	}
}
