package models

import (
	"errors"
)

var (
	ErrNoRecord                 = errors.New("models: no matching record found")
	ErrInvalidCredentials       = errors.New("models: invalid credentials")
	ErrCarNotFound              = errors.New("models: car not found")
	ErrPropertyNotFound         = errors.New("models: property not found")
	ErrRequestNotFound          = errors.New("models: purchase request not found")
	ErrImageNotFound            = errors.New("models: image not found")
	ErrSessionNotFound          = errors.New("models: session not found")
	ErrSettingsCategoryNotFound = errors.New("models: settings category not found")
	ErrInvalidStatus            = errors.New("models: invalid status value")
	ErrStorageUnavailable       = errors.New("models: image storage is not configured")
	ErrValidation               = errors.New("models: validation failed")
	ErrInvalidPhone             = errors.New("models: invalid phone number")
	ErrInvalidEmail             = errors.New("models: invalid email address")
)
