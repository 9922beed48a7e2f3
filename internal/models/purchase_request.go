package models

import (
	"time"
)

// Purchase request statuses. Requests are created as pending and moved
// forward only by an admin.
const (
	RequestPending   = "pending"
	RequestContacted = "contacted"
	RequestCompleted = "completed"
)

func IsValidRequestStatus(status string) bool {
	switch status {
	case RequestPending, RequestContacted, RequestCompleted:
		return true
	}
	return false
}

const (
	ItemTypeCar      = "car"
	ItemTypeProperty = "property"
)

type PurchaseRequest struct {
	ID        int       `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    int       `json:"item_id"`
	ItemTitle string    `json:"item_title,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PurchaseRequestFilter struct {
	Status string
	Page   int
	Limit  int
}

type PurchaseRequestListResponse struct {
	Requests []PurchaseRequest `json:"requests"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
