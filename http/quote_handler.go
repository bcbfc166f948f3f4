package http

import (
	"encoding/json"
	"net/http"

	"loan-cost/domain"
	"loan-cost/service"
)

type QuoteHandler struct {
	service *service.QuoteService
}

func NewQuoteHandler(service *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Quote answers a single fixed-payment quote.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Quote(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, toQuoteResponse(result))
}
