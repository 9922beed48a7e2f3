package services

import (
	"context"
	"time"

	"clutchzone/internal/models"
	"clutchzone/internal/repositories"
)

// recentWindow bounds the "recent activity" counters on the dashboard.
const recentWindow = 7 * 24 * time.Hour

type DashboardService struct {
	CarRepo      *repositories.CarRepository
	PropertyRepo *repositories.PropertyRepository
	RequestRepo  *repositories.PurchaseRequestRepository
}

func (s *DashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.TotalCars, err = s.CarRepo.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalProperties, err = s.PropertyRepo.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalRequests, err = s.RequestRepo.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}

	since := time.Now().Add(-recentWindow)

	newCars, err := s.CarRepo.CountCreatedSince(ctx, since)
	if err != nil {
		return models.DashboardStats{}, err
	}
	newProperties, err := s.PropertyRepo.CountCreatedSince(ctx, since)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.RecentActivity.NewListings = newCars + newProperties

	if stats.RecentActivity.NewRequests, err = s.RequestRepo.CountCreatedSince(ctx, since); err != nil {
		return models.DashboardStats{}, err
	}

	soldCars, err := s.CarRepo.CountSoldSince(ctx, since)
	if err != nil {
		return models.DashboardStats{}, err
	}
	soldProperties, err := s.PropertyRepo.CountSoldSince(ctx, since)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.RecentActivity.CompletedSales = soldCars + soldProperties

	return stats, nil
}

func (s *DashboardService) GetRecentRequests(ctx context.Context, limit int) ([]models.PurchaseRequest, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.RequestRepo.GetRecent(ctx, limit)
}
