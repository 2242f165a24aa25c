package handlers

import (
	"context"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/repository"
)

// memRepo backs the handler tests without a database.
type memRepo struct {
	destinations []*models.Destination
	foods        []*models.FoodItem
	routes       []models.BusRoute
	congestion   float64
	hasTraffic   bool
	peakHour     string

	loggedRequests []*models.RequestLog
	lastLogsLimit  int
}

func (m *memRepo) Destination() repository.DestinationRepositoryInterface { return m }
func (m *memRepo) Food() repository.FoodRepositoryInterface { return m }
func (m *memRepo) Transport() repository.TransportRepositoryInterface { return m }
func (m *memRepo) Request() repository.RequestRepositoryInterface { return m }
func (m *memRepo) Event() repository.EventRepositoryInterface { return m }

func (m *memRepo) ListDestinations(ctx context.Context) ([]*models.Destination, error) {
	return m.destinations, nil
}

func (m *memRepo) FindFood(ctx context.Context, city, country, category string, maxPrice float64, limit int) ([]*models.FoodItem, error) {
	if limit < len(m.foods) {
		return m.foods[:limit], nil
	}
	return m.foods, nil
}

func (m *memRepo) BusRoutes(ctx context.Context, city string, limit int) ([]models.BusRoute, error) {
	return m.routes, nil
}

func (m *memRepo) AvgCongestion(ctx context.Context, city string) (float64, bool, error) {
	return m.congestion, m.hasTraffic, nil
}

func (m *memRepo) PeakHour(ctx context.Context, city string) (string, error) {
	return m.peakHour, nil
}

func (m *memRepo) LogRequest(ctx context.Context, req *models.RequestLog) error {
	m.loggedRequests = append(m.loggedRequests, req)
	return nil
}

func (m *memRepo) GetRequestLogs(ctx context.Context, limit int) ([]*models.RequestLog, error) {
	m.lastLogsLimit = limit
	return m.loggedRequests, nil
}

func (m *memRepo) LogEvent(ctx context.Context, level, code, msg string, meta map[string]interface{}) error {
	return nil
}
