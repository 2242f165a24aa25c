package repository

import (
	"context"

	"github.com/tejashreee29/travellai/internal/models"
)

// Repository aggregates all repository interfaces
type Repository interface {
	Destination() DestinationRepositoryInterface
	Food() FoodRepositoryInterface
	Transport() TransportRepositoryInterface
	Request() RequestRepositoryInterface
	Event() EventRepositoryInterface
}

// DestinationRepositoryInterface defines destination dataset access
type DestinationRepositoryInterface interface {
	ListDestinations(ctx context.Context) ([]*models.Destination, error)
}

// FoodRepositoryInterface defines food dataset access
type FoodRepositoryInterface interface {
	FindFood(ctx context.Context, city, country, category string, maxPrice float64, limit int) ([]*models.FoodItem, error)
}

// TransportRepositoryInterface defines transport dataset access
type TransportRepositoryInterface interface {
	BusRoutes(ctx context.Context, city string, limit int) ([]models.BusRoute, error)
	AvgCongestion(ctx context.Context, city string) (float64, bool, error)
	PeakHour(ctx context.Context, city string) (string, error)
}

// RequestRepositoryInterface defines request logging operations
type RequestRepositoryInterface interface {
	LogRequest(ctx context.Context, req *models.RequestLog) error
	GetRequestLogs(ctx context.Context, limit int) ([]*models.RequestLog, error)
}

// EventRepositoryInterface defines event logging operations
type EventRepositoryInterface interface {
	LogEvent(ctx context.Context, level, code, msg string, meta map[string]interface{}) error
}
