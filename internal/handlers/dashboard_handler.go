package handlers

import (
	"net/http"

	"clutchzone/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) GetRecentRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.GetRecentRequests(r.Context(), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
