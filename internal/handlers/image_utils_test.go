package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"clutchzone/internal/models"
)

func multipartImageBody(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("not a real jpeg")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestUploadListingImagesWithoutStorage(t *testing.T) {
	files := []*multipart.FileHeader{{Filename: "front.jpg"}}
	_, err := uploadListingImages(nil, files, "cars")
	if !errors.Is(err, models.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestUploadCarImagesWithoutStorage(t *testing.T) {
	body, contentType := multipartImageBody(t, "images", "front.jpg")

	h := &CarHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/cars/1/images?:id=1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadCarImages(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestUploadPropertyImagesWithoutStorage(t *testing.T) {
	body, contentType := multipartImageBody(t, "images[]", "plan.png")

	h := &PropertyHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/properties/1/images?:id=1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadPropertyImages(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}
