package http

import (
	"encoding/json"
	"net/http"

	"loan-cost/domain"
	"loan-cost/service"
)

type RatesHandler struct {
	service *service.RatesService
}

func NewRatesHandler(service *service.RatesService) *RatesHandler {
	return &RatesHandler{service: service}
}

// Rates values a caller-built cashflow. Rate fields are omitted from the
// response when no rate was found; the caller must not read that as zero.
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RatesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Rates(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
