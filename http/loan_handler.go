package http

import (
	"net/http"

	"rental-agent/domain"
	"rental-agent/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
