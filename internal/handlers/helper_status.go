package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"clutchzone/internal/models"
)

var errorLog = log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

// SetErrorLog routes unrecognized handler errors to the application's error
// logger. Called once at startup.
func SetErrorLog(l *log.Logger) {
	if l != nil {
		errorLog = l
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError translates domain sentinels into HTTP statuses. Anything
// unrecognized is logged and answered with a generic 500 so internals never
// leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrCarNotFound),
		errors.Is(err, models.ErrPropertyNotFound),
		errors.Is(err, models.ErrRequestNotFound),
		errors.Is(err, models.ErrImageNotFound),
		errors.Is(err, models.ErrSettingsCategoryNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidPhone),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrStorageUnavailable):
		http.Error(w, "image storage is not configured", http.StatusServiceUnavailable)
	case isForeignKeyConstraintError(err):
		http.Error(w, "referenced record does not exist", http.StatusBadRequest)
	default:
		errorLog.Output(2, err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
