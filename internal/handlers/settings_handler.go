package handlers

import (
	"encoding/json"
	"net/http"

	"clutchzone/internal/services"
)

type SettingsHandler struct {
	Service *services.SettingsService
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.GetAll())
}

// UpdateCategory handles the fixed per-category routes. The category comes
// from the route registration, not the client.
func (h *SettingsHandler) UpdateCategory(category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partial map[string]string
		if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		updated, err := h.Service.UpdateCategory(r.Context(), category, partial)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]map[string]string{category: updated})
	}
}

// UpdateKey sets a single value addressed by path, e.g.
// PUT /api/settings/contact/phone.
func (h *SettingsHandler) UpdateKey(w http.ResponseWriter, r *http.Request) {
	category := getParam(r, "category")
	key := getParam(r, "key")
	if key == "" {
		http.Error(w, "Missing key", http.StatusBadRequest)
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateKey(r.Context(), category, key, body.Value)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]map[string]string{category: updated})
}