package models

import (
	"time"
)

// Listing statuses shared by cars and properties.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusPending   = "pending"
)

func IsValidListingStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusSold, StatusPending:
		return true
	}
	return false
}

// Image is a hosted listing photo. PublicID is the opaque handle required to
// delete the file from the media host.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Car struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Year         int        `json:"year"`
	Price        float64    `json:"price"`
	Mileage      int        `json:"mileage"`
	Transmission string     `json:"transmission"` // manual/automatic/cvt
	FuelType     string     `json:"fuel_type"`    // petrol/diesel/hybrid/electric
	Color        string     `json:"color,omitempty"`
	City         string     `json:"city"`
	Condition    string     `json:"condition"` // new/used
	Description  string     `json:"description"`
	Features     []string   `json:"features"`
	Images       []Image    `json:"images"`
	Status       string     `json:"status"`
	Featured     bool       `json:"featured"`
	Hot          bool       `json:"hot"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CarFilter carries the recognized narrowing parameters for car listings.
// A zero value on any field means no constraint on that field.
type CarFilter struct {
	Make         string
	Model        string
	Year         int
	MinPrice     float64
	MaxPrice     float64
	MaxMileage   int
	Transmission string
	FuelType     string
	City         string
	Condition    string
	Search       string
	Featured     bool
	Sort         string
	Page         int
	Limit        int
}

type CarListResponse struct {
	Cars  []Car `json:"cars"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
