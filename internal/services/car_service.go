package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
)

const featuredCacheTTL = time.Minute

type CarService struct {
	CarRepo *repositories.CarRepository
	Cache   *redis.Client // optional; nil disables caching
}

func validateCar(car models.Car) error {
	if car.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", models.ErrValidation)
	}
	if car.Year < 1950 || car.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: implausible year %d", models.ErrValidation, car.Year)
	}
	return nil
}

func (s *CarService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if car.Status == "" {
		car.Status = models.StatusAvailable
	}
	if !models.IsValidListingStatus(car.Status) {
		return models.Car{}, models.ErrInvalidStatus
	}
	if err := validateCar(car); err != nil {
		return models.Car{}, err
	}
	created, err := s.CarRepo.CreateCar(ctx, car)
	if err != nil {
		return models.Car{}, err
	}
	s.invalidateFeatured(ctx)
	return created, nil
}

// GetCars resolves the catalog query contract: filters AND-combined, sorted,
// paginated, with the pre-pagination total. The featured-only variant used by
// the homepage carousel is served from a short-lived cache when one is wired.
func (s *CarService) GetCars(ctx context.Context, filter models.CarFilter) (models.CarListResponse, error) {
	if featuredOnlyCar(filter) {
		if resp, ok := s.featuredFromCache(ctx, filter.Limit); ok {
			return resp, nil
		}
	}

	cars, total, err := s.CarRepo.GetFiltered(ctx, filter)
	if err != nil {
		return models.CarListResponse{}, err
	}
	if cars == nil {
		cars = []models.Car{}
	}

	resp := models.CarListResponse{
		Cars:  cars,
		Total: total,
		Page:  normalizePage(filter.Page),
		Limit: normalizeLimit(filter.Limit),
	}

	if featuredOnlyCar(filter) {
		s.storeFeatured(ctx, filter.Limit, resp)
	}
	return resp, nil
}

func (s *CarService) GetCarByID(ctx context.Context, id int) (models.Car, error) {
	return s.CarRepo.GetCarByID(ctx, id)
}

func (s *CarService) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if !models.IsValidListingStatus(car.Status) {
		return models.Car{}, models.ErrInvalidStatus
	}
	if err := validateCar(car); err != nil {
		return models.Car{}, err
	}
	updated, err := s.CarRepo.UpdateCar(ctx, car)
	if err != nil {
		return models.Car{}, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *CarService) UpdateStatus(ctx context.Context, id int, status string) error {
	if !models.IsValidListingStatus(status) {
		return models.ErrInvalidStatus
	}
	if err := s.CarRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *CarService) DeleteCar(ctx context.Context, id int) error {
	if err := s.CarRepo.DeleteCar(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

// AttachImages appends uploaded images to a car and returns the full list.
func (s *CarService) AttachImages(ctx context.Context, id int, uploaded []models.Image) ([]models.Image, error) {
	car, err := s.CarRepo.GetCarByID(ctx, id)
	if err != nil {
		return nil, err
	}
	car.Images = append(car.Images, uploaded...)
	if err := s.CarRepo.UpdateImages(ctx, id, car.Images); err != nil {
		return nil, err
	}
	return car.Images, nil
}

// DetachImage removes an image by its deletion handle and reports the image
// so the caller can delete the hosted file.
func (s *CarService) DetachImage(ctx context.Context, id int, publicID string) (models.Image, []models.Image, error) {
	car, err := s.CarRepo.GetCarByID(ctx, id)
	if err != nil {
		return models.Image{}, nil, err
	}

	var removed models.Image
	kept := make([]models.Image, 0, len(car.Images))
	found := false
	for _, img := range car.Images {
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
	if err := s.CarRepo.UpdateImages(ctx, id, kept); err != nil {
		return models.Image{}, nil, err
	}
	return removed, kept, nil
}

func featuredOnlyCar(f models.CarFilter) bool {
	return f.Featured && f.Make == "" && f.Model == "" && f.Year == 0 &&
		f.MinPrice == 0 && f.MaxPrice == 0 && f.MaxMileage == 0 &&
		f.Transmission == "" && f.FuelType == "" && f.City == "" &&
		f.Condition == "" && f.Search == "" && f.Sort == "" && f.Page <= 1
}

func (s *CarService) featuredFromCache(ctx context.Context, limit int) (models.CarListResponse, bool) {
	if s.Cache == nil {
		return models.CarListResponse{}, false
	}
	data, err := s.Cache.Get(ctx, fmt.Sprintf("featured:cars:%d", normalizeLimit(limit))).Bytes()
	if err != nil {
		return models.CarListResponse{}, false
	}
	var resp models.CarListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.CarListResponse{}, false
	}
	return resp, true
}

func (s *CarService) storeFeatured(ctx context.Context, limit int, resp models.CarListResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, fmt.Sprintf("featured:cars:%d", normalizeLimit(limit)), data, featuredCacheTTL)
}

func (s *CarService) invalidateFeatured(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	iter := s.Cache.Scan(ctx, 0, "featured:cars:*", 0).Iterator()
	for iter.Next(ctx) {
		s.Cache.Del(ctx, iter.Val())
	}
}
