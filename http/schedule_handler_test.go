package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loan-cost/repository"
	"loan-cost/service"
)

func newScheduleHandler() *ScheduleHandler {
	svc := service.NewScheduleService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewMemoryCache(),
		zap.NewNop(),
	)
	return NewScheduleHandler(svc)
}

func TestScheduleHandler_OK(t *testing.T) {
	handler := newScheduleHandler()

	body := []byte(`{
		"principal": 100000,
		"periods_per_year": 12,
		"options": {
			"upfront_cost": 1800,
			"include_cost_in_principal": true,
			"segments": [
				{"period_count": 24, "annual_rate_percent": 10, "periodic_fee": 25}
			]
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/schedule", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 24, resp.DurationPeriods)
	assert.Len(t, resp.PaymentPlan, 24)
	assert.Zero(t, resp.PaymentPlan[23].RemainingBalance)
	require.NotNil(t, resp.AnnualCost)
	assert.Greater(t, *resp.AnnualCost, 0.10)
}

func TestScheduleHandler_TwoSegments(t *testing.T) {
	handler := newScheduleHandler()

	body := []byte(`{
		"principal": 100000,
		"periods_per_year": 12,
		"options": {
			"segments": [
				{"period_count": 6, "fixed_payment": 1000, "use_fixed_payment": true},
				{"period_count": 24, "annual_rate_percent": 10}
			]
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/schedule", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 30, resp.DurationPeriods)
	assert.InDelta(t, 94000, resp.PaymentPlan[5].RemainingBalance, 1e-9)
}

func TestScheduleHandler_MethodNotAllowed(t *testing.T) {
	handler := newScheduleHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/schedule", nil)
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestScheduleHandler_BadRequest(t *testing.T) {
	handler := newScheduleHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/schedule", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandler_RejectedInput(t *testing.T) {
	handler := newScheduleHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/schedule", bytes.NewBuffer([]byte(`{"principal": -1}`)))
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
