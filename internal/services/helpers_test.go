package services

import (
	"context"
	"fmt"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/repository"
)

// stubRepo backs the service tests without a database.
type stubRepo struct {
	destinations []*models.Destination
	foods        []*models.FoodItem
	routes       []models.BusRoute
	congestion   float64
	hasTraffic   bool
	peakHour     string

	loggedRequests []*models.RequestLog
}

func (s *stubRepo) Destination() repository.DestinationRepositoryInterface { return s }
func (s *stubRepo) Food() repository.FoodRepositoryInterface { return s }
func (s *stubRepo) Transport() repository.TransportRepositoryInterface { return s }
func (s *stubRepo) Request() repository.RequestRepositoryInterface { return s }
func (s *stubRepo) Event() repository.EventRepositoryInterface { return s }

func (s *stubRepo) ListDestinations(ctx context.Context) ([]*models.Destination, error) {
	return s.destinations, nil
}

func (s *stubRepo) FindFood(ctx context.Context, city, country, category string, maxPrice float64, limit int) ([]*models.FoodItem, error) {
	if limit < len(s.foods) {
		return s.foods[:limit], nil
	}
	return s.foods, nil
}

func (s *stubRepo) BusRoutes(ctx context.Context, city string, limit int) ([]models.BusRoute, error) {
	return s.routes, nil
}

func (s *stubRepo) AvgCongestion(ctx context.Context, city string) (float64, bool, error) {
	return s.congestion, s.hasTraffic, nil
}

func (s *stubRepo) PeakHour(ctx context.Context, city string) (string, error) {
	return s.peakHour, nil
}

func (s *stubRepo) LogRequest(ctx context.Context, req *models.RequestLog) error {
	s.loggedRequests = append(s.loggedRequests, req)
	return nil
}

func (s *stubRepo) GetRequestLogs(ctx context.Context, limit int) ([]*models.RequestLog, error) {
	return s.loggedRequests, nil
}

func (s *stubRepo) LogEvent(ctx context.Context, level, code, msg string, meta map[string]interface{}) error {
	return nil
}

// stubResponder is a scriptable model for tests.
type stubResponder struct {
	reply string
	err   error
}

func (r *stubResponder) Generate(ctx context.Context, prompt string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func (r *stubResponder) Name() string { return "stub" }

var errStub = fmt.Errorf("stub failure")
