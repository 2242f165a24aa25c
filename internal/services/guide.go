package services

import (
	"context"
	"fmt"
	"math"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/repository"
)

const (
	foodFilteredLimit = 10
	foodBrowseLimit   = 20
	busRouteLimit     = 5
)

// GuideService serves the food and transport lookups backed by the seeded
// datasets.
type GuideService struct {
	repo repository.Repository
}

func NewGuideService(repo repository.Repository) *GuideService {
	return &GuideService{repo: repo}
}

// FindFood returns a sample of dishes matching the filters. Without any
// filter a larger browse sample is returned, mirroring the suggestion list.
func (s *GuideService) FindFood(ctx context.Context, city, country, category string, maxPrice float64) ([]*models.FoodItem, error) {
	limit := foodFilteredLimit
	if city == "" && country == "" && category == "" && maxPrice <= 0 {
		limit = foodBrowseLimit
	}
	items, err := s.repo.Food().FindFood(ctx, city, country, category, maxPrice, limit)
	if err != nil {
		return nil, fmt.Errorf("find food: %w", err)
	}
	return items, nil
}

// TransportSummary aggregates what the transport datasets know about a city:
// a sample of bus routes, the average congestion level, and the most common
// peak hour as the time to avoid.
func (s *GuideService) TransportSummary(ctx context.Context, city string) (*models.TransportSummary, error) {
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}

	summary := &models.TransportSummary{City: city}

	routes, err := s.repo.Transport().BusRoutes(ctx, city, busRouteLimit)
	if err != nil {
		return nil, fmt.Errorf("bus routes: %w", err)
	}
	summary.BusRoutes = routes

	avg, ok, err := s.repo.Transport().AvgCongestion(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("congestion: %w", err)
	}
	if ok {
		summary.AvgCongestion = math.Round(avg*100) / 100
	}

	peak, err := s.repo.Transport().PeakHour(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("peak hour: %w", err)
	}
	summary.BestTravelTime = peak

	return summary, nil
}
