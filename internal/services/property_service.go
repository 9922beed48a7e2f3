package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
)

type PropertyService struct {
	PropertyRepo *repositories.PropertyRepository
	Cache        *redis.Client // optional; nil disables caching
}

func validateProperty(p models.Property) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", models.ErrValidation)
	}
	if p.Area <= 0 {
		return fmt.Errorf("%w: area must be > 0", models.ErrValidation)
	}
	return nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if p.Status == "" {
		p.Status = models.StatusAvailable
	}
	if !models.IsValidListingStatus(p.Status) {
		return models.Property{}, models.ErrInvalidStatus
	}
	if err := validateProperty(p); err != nil {
		return models.Property{}, err
	}
	created, err := s.PropertyRepo.CreateProperty(ctx, p)
	if err != nil {
		return models.Property{}, err
	}
	s.invalidateFeatured(ctx)
	return created, nil
}

func (s *PropertyService) GetProperties(ctx context.Context, filter models.PropertyFilter) (models.PropertyListResponse, error) {
	if featuredOnlyProperty(filter) {
		if resp, ok := s.featuredFromCache(ctx, filter.Limit); ok {
			return resp, nil
		}
	}

	properties, total, err := s.PropertyRepo.GetFiltered(ctx, filter)
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	if properties == nil {
		properties = []models.Property{}
	}

	resp := models.PropertyListResponse{
		Properties: properties,
		Total:      total,
		Page:       normalizePage(filter.Page),
		Limit:      normalizeLimit(filter.Limit),
	}

	if featuredOnlyProperty(filter) {
		s.storeFeatured(ctx, filter.Limit, resp)
	}
	return resp, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, id)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if !models.IsValidListingStatus(p.Status) {
		return models.Property{}, models.ErrInvalidStatus
	}
	if err := validateProperty(p); err != nil {
		return models.Property{}, err
	}
	updated, err := s.PropertyRepo.UpdateProperty(ctx, p)
	if err != nil {
		return models.Property{}, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *PropertyService) UpdateStatus(ctx context.Context, id int, status string) error {
	if !models.IsValidListingStatus(status) {
		return models.ErrInvalidStatus
	}
	if err := s.PropertyRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int) error {
	if err := s.PropertyRepo.DeleteProperty(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *PropertyService) AttachImages(ctx context.Context, id int, uploaded []models.Image) ([]models.Image, error) {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, uploaded...)
	if err := s.PropertyRepo.UpdateImages(ctx, id, p.Images); err != nil {
		return nil, err
	}
	return p.Images, nil
}

func (s *PropertyService) DetachImage(ctx context.Context, id int, publicID string) (models.Image, []models.Image, error) {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Image{}, nil, err
	}

	var removed models.Image
	kept := make([]models.Image, 0, len(p.Images))
	found := false
	for _, img := range p.Images {
		if img.PublicID == publicID {
			removed = img
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		return models.Image{}, nil, models.ErrImageNotFound
	}
	if err := s.PropertyRepo.UpdateImages(ctx, id, kept); err != nil {
		return models.Image{}, nil, err
	}
	return removed, kept, nil
}

func featuredOnlyProperty(f models.PropertyFilter) bool {
	return f.Featured && f.Type == "" && f.Bedrooms == 0 && f.Bathrooms == 0 &&
		f.MinPrice == 0 && f.MaxPrice == 0 && f.MinArea == 0 && f.MaxArea == 0 &&
		f.City == "" && f.Neighborhood == "" && f.Furnished == "" &&
		f.Search == "" && f.Sort == "" && f.Page <= 1
}

func (s *PropertyService) featuredFromCache(ctx context.Context, limit int) (models.PropertyListResponse, bool) {
	if s.Cache == nil {
		return models.PropertyListResponse{}, false
	}
	data, err := s.Cache.Get(ctx, fmt.Sprintf("featured:properties:%d", normalizeLimit(limit))).Bytes()
	if err != nil {
		return models.PropertyListResponse{}, false
	}
	var resp models.PropertyListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.PropertyListResponse{}, false
	}
	return resp, true
}

func (s *PropertyService) storeFeatured(ctx context.Context, limit int, resp models.PropertyListResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, fmt.Sprintf("featured:properties:%d", normalizeLimit(limit)), data, featuredCacheTTL)
}

func (s *PropertyService) invalidateFeatured(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	iter := s.Cache.Scan(ctx, 0, "featured:properties:*", 0).Iterator()
	for iter.Next(ctx) {
		s.Cache.Del(ctx, iter.Val())
	}
}
