package handlers

import (
	"encoding/json"
	"net/http"

	"clutchzone/internal/models"
	"clutchzone/internal/services"
	"clutchzone/utils"
)

type PropertyHandler struct {
	Service *services.PropertyService
	Storage *utils.ImageStorage
}

func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.PropertyFilter{
		Type:         q.Get("type"),
		City:         q.Get("city"),
		Neighborhood: q.Get("neighborhood"),
		MinPrice:     queryFloat(r, "minPrice"),
		MaxPrice:     queryFloat(r, "maxPrice"),
		Bedrooms:     queryInt(r, "bedrooms"),
		Bathrooms:    queryInt(r, "bathrooms"),
		MinArea:      queryFloat(r, "minArea"),
		MaxArea:      queryFloat(r, "maxArea"),
		Furnished:    q.Get("furnished"),
		Search:       q.Get("search"),
		Featured:     queryBool(r, "featured"),
		Sort:         q.Get("sort"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	resp, err := h.Service.GetProperties(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateProperty(r.Context(), property)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	property.ID = id
	updated, err := h.Service.UpdateProperty(r.Context(), property)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateStatus(r.Context(), id, body.Status); err != nil {
		respondError(w, err)
		return
	}
	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteProperty(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) UploadPropertyImages(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	files := collectImageFiles(r.MultipartForm, "images", "images[]")
	if len(files) == 0 {
		http.Error(w, "No images provided", http.StatusBadRequest)
		return
	}

	uploaded, err := uploadListingImages(h.Storage, files, "properties")
	if err != nil {
		respondError(w, err)
		return
	}

	images, err := h.Service.AttachImages(r.Context(), id, uploaded)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *PropertyHandler) DeletePropertyImage(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var body struct {
		PublicID string `json:"public_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PublicID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	removed, kept, err := h.Service.DetachImage(r.Context(), id, body.PublicID)
	if err != nil {
		respondError(w, err)
		return
	}
	if h.Storage != nil {
		_ = h.Storage.Delete(removed.PublicID)
	}
	writeJSON(w, http.StatusOK, kept)
}
