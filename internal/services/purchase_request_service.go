package services

import (
	"context"
	"fmt"
	"strings"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
	"clutchzone/utils"
)

// Feed receives new purchase requests for live delivery to connected admins.
type Feed interface {
	Publish(req models.PurchaseRequest)
}

type PurchaseRequestService struct {
	RequestRepo  *repositories.PurchaseRequestRepository
	CarRepo      *repositories.CarRepository
	PropertyRepo *repositories.PropertyRepository

	Feed     Feed                 // optional
	Notifier *NotificationService // optional
}

func (s *PurchaseRequestService) CreateRequest(ctx context.Context, req models.PurchaseRequest) (models.PurchaseRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.PurchaseRequest{}, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if !utils.ValidateEgyptianPhone(req.Phone) {
		return models.PurchaseRequest{}, models.ErrInvalidPhone
	}
	if req.Email != "" && !utils.ValidateEmail(req.Email) {
		return models.PurchaseRequest{}, models.ErrInvalidEmail
	}

	title, err := s.resolveItem(ctx, req.ItemType, req.ItemID)
	if err != nil {
		return models.PurchaseRequest{}, err
	}
	req.ItemTitle = title
	req.Status = models.RequestPending

	created, err := s.RequestRepo.CreateRequest(ctx, req)
	if err != nil {
		return models.PurchaseRequest{}, err
	}

	if s.Feed != nil {
		s.Feed.Publish(created)
	}
	if s.Notifier != nil {
		s.Notifier.NotifyAdmins(ctx, "New purchase request",
			fmt.Sprintf("%s is interested in %s", created.Name, created.ItemTitle),
			map[string]string{
				"request_id": fmt.Sprint(created.ID),
				"item_type":  created.ItemType,
			})
	}
	return created, nil
}

// resolveItem checks the listing exists and returns its title for the
// denormalized item_title column.
func (s *PurchaseRequestService) resolveItem(ctx context.Context, itemType string, itemID int) (string, error) {
	switch itemType {
	case models.ItemTypeCar:
		ok, err := s.CarRepo.Exists(ctx, itemID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", models.ErrCarNotFound
		}
		return s.CarRepo.GetTitle(ctx, itemID)
	case models.ItemTypeProperty:
		ok, err := s.PropertyRepo.Exists(ctx, itemID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", models.ErrPropertyNotFound
		}
		return s.PropertyRepo.GetTitle(ctx, itemID)
	default:
		return "", fmt.Errorf("%w: unknown item type %q", models.ErrValidation, itemType)
	}
}

func (s *PurchaseRequestService) GetRequests(ctx context.Context, filter models.PurchaseRequestFilter) (models.PurchaseRequestListResponse, error) {
	filter.Page = normalizePage(filter.Page)
	filter.Limit = normalizeLimit(filter.Limit)
	if filter.Status != "" && !models.IsValidRequestStatus(filter.Status) {
		return models.PurchaseRequestListResponse{}, models.ErrInvalidStatus
	}

	requests, total, err := s.RequestRepo.GetFiltered(ctx, filter)
	if err != nil {
		return models.PurchaseRequestListResponse{}, err
	}
	return models.PurchaseRequestListResponse{
		Requests: requests,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *PurchaseRequestService) GetRequestByID(ctx context.Context, id int) (models.PurchaseRequest, error) {
	return s.RequestRepo.GetRequestByID(ctx, id)
}

func (s *PurchaseRequestService) UpdateStatus(ctx context.Context, id int, status string) (models.PurchaseRequest, error) {
	if !models.IsValidRequestStatus(status) {
		return models.PurchaseRequest{}, models.ErrInvalidStatus
	}
	if err := s.RequestRepo.UpdateStatus(ctx, id, status); err != nil {
		return models.PurchaseRequest{}, err
	}
	return s.RequestRepo.GetRequestByID(ctx, id)
}

func (s *PurchaseRequestService) DeleteRequest(ctx context.Context, id int) error {
	return s.RequestRepo.DeleteRequest(ctx, id)
}

// GetAllForExport returns the complete set, newest first.
func (s *PurchaseRequestService) GetAllForExport(ctx context.Context) ([]models.PurchaseRequest, error) {
	return s.RequestRepo.GetAll(ctx)
}
