package models

import (
	"time"
)

// Property furnished states.
const (
	Furnished     = "furnished"
	Unfurnished   = "unfurnished"
	SemiFurnished = "semi-furnished"
)

type Property struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"` // apartment/villa/house/studio/duplex/penthouse/townhouse/shop/land/commercial
	City         string     `json:"city"`
	Neighborhood string     `json:"neighborhood,omitempty"`
	Price        float64    `json:"price"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    int        `json:"bathrooms"`
	Area         float64    `json:"area"` // square meters
	FurnishedAs  string     `json:"furnished"`
	Description  string     `json:"description"`
	Features     []string   `json:"features"`
	Images       []Image    `json:"images"`
	Status       string     `json:"status"`
	Featured     bool       `json:"featured"`
	Hot          bool       `json:"hot"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type PropertyFilter struct {
	Type         string
	Bedrooms     int
	Bathrooms    int
	MinPrice     float64
	MaxPrice     float64
	MinArea      float64
	MaxArea      float64
	City         string
	Neighborhood string
	Furnished    string
	Search       string
	Featured     bool
	Sort         string
	Page         int
	Limit        int
}

type PropertyListResponse struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
