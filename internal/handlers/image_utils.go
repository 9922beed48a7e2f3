package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"clutchzone/internal/models"
	"clutchzone/utils"
)

const maxImagesPerUpload = 10

// collectImageFiles gathers uploaded files across the form keys the SPA has
// used over time ("images" and the indexed "images[]").
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// uploadListingImages pushes each file to object storage under the given
// folder and returns the stored descriptors. The folder keeps car and property
// media separated in the bucket.
func uploadListingImages(storage *utils.ImageStorage, files []*multipart.FileHeader, folder string) ([]models.Image, error) {
	if storage == nil {
		return nil, models.ErrStorageUnavailable
	}
	if len(files) > maxImagesPerUpload {
		return nil, fmt.Errorf("%w: at most %d images per upload", models.ErrValidation, maxImagesPerUpload)
	}

	var images []models.Image
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fileHeader.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileHeader.Filename, err)
		}

		name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
		url, key, err := storage.Upload(data, name, folder, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fileHeader.Filename, err)
		}

		images = append(images, models.Image{URL: url, PublicID: key})
	}
	return images, nil
}
