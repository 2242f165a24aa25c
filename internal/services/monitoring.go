package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/tejashreee29/travellai/internal/config"
)

// MonitoringService publishes load reports for the assistant over NATS.
// A nil service is valid and turns every method into a no-op, so the server
// runs without a broker.
type MonitoringService struct {
	nats         *nats.Conn
	config       *config.Config
	pendingCount int64 // atomic counter
	activeCount  int64 // atomic counter for active processing
}

type LoadReport struct {
	ServiceName     string    `json:"service_name"`
	PendingRequests int64     `json:"pending_requests"`
	ActiveRequests  int64     `json:"active_requests"`
	Timestamp       time.Time `json:"timestamp"`
	Threshold       int       `json:"threshold"`
	Status          string    `json:"status"` // healthy, warning, critical
}

func NewMonitoringService(natsConn *nats.Conn, cfg *config.Config) *MonitoringService {
	return &MonitoringService{
		nats:   natsConn,
		config: cfg,
	}
}

func (m *MonitoringService) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	slog.Info("Starting monitoring service",
		"topic", m.config.MonitoringTopic,
		"threshold", m.config.ReportThreshold)

	go m.monitorLoad(ctx)

	return nil
}

func (m *MonitoringService) monitorLoad(ctx context.Context) {
	// Report faster while requests are in flight
	highLoadTicker := time.NewTicker(1 * time.Second)
	lowLoadTicker := time.NewTicker(10 * time.Second)
	defer highLoadTicker.Stop()
	defer lowLoadTicker.Stop()

	currentTicker := lowLoadTicker

	for {
		select {
		case <-ctx.Done():
			return
		case <-currentTicker.C:
			pending := atomic.LoadInt64(&m.pendingCount)
			active := atomic.LoadInt64(&m.activeCount)

			if active > 0 && currentTicker == lowLoadTicker {
				currentTicker = highLoadTicker
				slog.Debug("Switched to high-frequency monitoring", "active", active)
			} else if active == 0 && currentTicker == highLoadTicker {
				currentTicker = lowLoadTicker
				slog.Debug("Switched to low-frequency monitoring")
			}

			m.reportLoad(pending, active)
		}
	}
}

func (m *MonitoringService) reportLoad(pending, active int64) {
	status := m.calculateStatus(pending, active)

	report := LoadReport{
		ServiceName:     m.config.ServiceName,
		PendingRequests: pending,
		ActiveRequests:  active,
		Timestamp:       time.Now(),
		Threshold:       m.config.ReportThreshold,
		Status:          status,
	}

	reportData, err := json.Marshal(report)
	if err != nil {
		slog.Error("Failed to marshal load report", "error", err)
		return
	}

	topic := fmt.Sprintf("%s.%s", m.config.MonitoringTopic, m.config.ServiceName)
	if err := m.nats.Publish(topic, reportData); err != nil {
		slog.Warn("Failed to publish load report", "error", err)
		return
	}

	// Log significant changes
	if active > 0 || status != "healthy" {
		slog.Info("Load report",
			"pending", pending,
			"active", active,
			"status", status)
	}
}

func (m *MonitoringService) calculateStatus(pending, active int64) string {
	total := pending + active
	threshold := int64(m.config.ReportThreshold)

	if total == 0 {
		return "healthy"
	} else if total < threshold {
		return "warning"
	}
	return "critical"
}

// IncrementPending atomically increments the pending request count
func (m *MonitoringService) IncrementPending() {
	if m != nil {
		atomic.AddInt64(&m.pendingCount, 1)
	}
}

// DecrementPending atomically decrements the pending request count
func (m *MonitoringService) DecrementPending() {
	if m != nil {
		atomic.AddInt64(&m.pendingCount, -1)
	}
}

// IncrementActive atomically increments the active processing count
func (m *MonitoringService) IncrementActive() {
	if m != nil {
		atomic.AddInt64(&m.activeCount, 1)
	}
}

// DecrementActive atomically decrements the active processing count
func (m *MonitoringService) DecrementActive() {
	if m != nil {
		atomic.AddInt64(&m.activeCount, -1)
	}
}

// GetPendingCount returns the current pending count
func (m *MonitoringService) GetPendingCount() int64 {
	if m == nil {
		return 0
	}
	return atomic.LoadInt64(&m.pendingCount)
}

// GetActiveCount returns the current active count
func (m *MonitoringService) GetActiveCount() int64 {
	if m == nil {
		return 0
	}
	return atomic.LoadInt64(&m.activeCount)
}
