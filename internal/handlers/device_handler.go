package handlers

import (
	"encoding/json"
	"net/http"

	"clutchzone/internal/repositories"
)

// DeviceHandler manages FCM registrations for the admin's browser or phone.
// The push notifier reads the same token table.
type DeviceHandler struct {
	Repo *repositories.DeviceRepository
}

func (h *DeviceHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	device, err := h.Repo.RegisterDevice(r.Context(), body.Token)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, device)
}

func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	token := getParam(r, "token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteToken(r.Context(), token); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
