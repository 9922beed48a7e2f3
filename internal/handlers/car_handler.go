package handlers

import (
	"encoding/json"
	"net/http"

	"clutchzone/internal/models"
	"clutchzone/internal/services"
	"clutchzone/utils"
)

type CarHandler struct {
	Service *services.CarService
	Storage *utils.ImageStorage
}

// GetCars serves the public catalog. Unknown query parameters are ignored;
// recognized ones narrow the result.
func (h *CarHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.CarFilter{
		Make:         q.Get("make"),
		Model:        q.Get("model"),
		Year:         queryInt(r, "year"),
		MinPrice:     queryFloat(r, "minPrice"),
		MaxPrice:     queryFloat(r, "maxPrice"),
		MaxMileage:   queryInt(r, "maxMileage"),
		Transmission: q.Get("transmission"),
		FuelType:     q.Get("fuelType"),
		City:         q.Get("city"),
		Condition:    q.Get("condition"),
		Search:       q.Get("search"),
		Featured:     queryBool(r, "featured"),
		Sort:         q.Get("sort"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	resp, err := h.Service.GetCars(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CarHandler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	car, err := h.Service.GetCarByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateCar(r.Context(), car)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	car.ID = id
	updated, err := h.Service.UpdateCar(r.Context(), car)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CarHandler) UpdateCarStatus(w http.ResponseWriter, r *http.Request) {
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
	car, err := h.Service.GetCarByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteCar(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadCarImages accepts a multipart form, stores each file and attaches the
// resulting descriptors to the listing.
func (h *CarHandler) UploadCarImages(w http.ResponseWriter, r *http.Request) {
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

	uploaded, err := uploadListingImages(h.Storage, files, "cars")
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

// DeleteCarImage removes one image by its storage handle, from the listing
// first and then from the bucket.
func (h *CarHandler) DeleteCarImage(w http.ResponseWriter, r *http.Request) {
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
		// Listing record is already consistent; bucket cleanup failure is
		// not worth failing the request over.
		_ = h.Storage.Delete(removed.PublicID)
	}
	writeJSON(w, http.StatusOK, kept)
}
