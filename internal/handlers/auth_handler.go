package handlers

import (
	"encoding/json"
	"net/http"

	"clutchzone/internal/models"
	"clutchzone/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Verify answers whether the presented token still grants admin access.
// The JWT middleware has already vetted it by the time we get here.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}
