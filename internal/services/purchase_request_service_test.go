package services

import (
	"context"
	"errors"
	"testing"

	"clutchzone/internal/models"
)

// Invalid submissions are rejected before any storage or listing lookup, so
// a zero-value service is enough here.
func TestCreateRequestValidation(t *testing.T) {
	svc := &PurchaseRequestService{}

	cases := []struct {
		name string
		req  models.PurchaseRequest
		want error
	}{
		{
			"missing name",
			models.PurchaseRequest{Name: "   ", Phone: "01012345678", ItemType: models.ItemTypeCar, ItemID: 1},
			models.ErrValidation,
		},
		{
			"bad phone",
			models.PurchaseRequest{Name: "Ahmed", Phone: "01312345678", ItemType: models.ItemTypeCar, ItemID: 1},
			models.ErrInvalidPhone,
		},
		{
			"short phone",
			models.PurchaseRequest{Name: "Ahmed", Phone: "0101234567", ItemType: models.ItemTypeCar, ItemID: 1},
			models.ErrInvalidPhone,
		},
		{
			"bad email",
			models.PurchaseRequest{Name: "Ahmed", Phone: "01012345678", Email: "not-an-email", ItemType: models.ItemTypeCar, ItemID: 1},
			models.ErrInvalidEmail,
		},
		{
			"unknown item type",
			models.PurchaseRequest{Name: "Ahmed", Phone: "01012345678", ItemType: "boat", ItemID: 1},
			models.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRequest(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGetRequestsRejectsUnknownStatus(t *testing.T) {
	svc := &PurchaseRequestService{}
	_, err := svc.GetRequests(context.Background(), models.PurchaseRequestFilter{Status: "archived"})
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &PurchaseRequestService{}
	_, err := svc.UpdateStatus(context.Background(), 1, "archived")
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
