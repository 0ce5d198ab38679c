package http

import (
	"context"
	"net/http"
	"strconv"

	"rental-agent/apperrors"
	"rental-agent/domain"
	"rental-agent/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// serveSimulation decodes a SimulationInput and answers with the result of
// compute.
func serveSimulation[T any](
	w http.ResponseWriter,
	r *http.Request,
	compute func(context.Context, domain.SimulationInput) (T, error),
) {
	var input domain.SimulationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := compute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.Simulate)
}

func (h *SimulationHandler) SelfFinancing(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.SelfFinancing)
}

func (h *SimulationHandler) Taxation(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.Taxation)
}

func (h *SimulationHandler) Resale(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.Resale)
}

func (h *SimulationHandler) Yields(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.Yields)
}

func (h *SimulationHandler) IRR(w http.ResponseWriter, r *http.Request) {
	serveSimulation(w, r, h.service.IRR)
}

func (h *SimulationHandler) ResaleChart(w http.ResponseWriter, r *http.Request) {
	var input domain.SimulationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	png, err := h.service.ResaleChart(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	_, _ = w.Write(png)
}

func (h *SimulationHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
