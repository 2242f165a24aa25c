package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
)

// ServiceLoad is the latest load report received from a service instance.
type ServiceLoad struct {
	ServiceName     string    `json:"service_name"`
	PendingRequests int64     `json:"pending_requests"`
	ActiveRequests  int64     `json:"active_requests"`
	Timestamp       time.Time `json:"timestamp"`
	Threshold       int       `json:"threshold"`
	Status          string    `json:"status"`
	LastSeen        time.Time `json:"last_seen"`
}

type LoadMonitor struct {
	nats     *nats.Conn
	services map[string]*ServiceLoad
	mu       sync.RWMutex
}

func NewLoadMonitor(natsURL string) (*LoadMonitor, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &LoadMonitor{
		nats:     nc,
		services: make(map[string]*ServiceLoad),
	}, nil
}

func (m *LoadMonitor) Start(topic string) error {
	subject := topic + ".*"
	_, err := m.nats.Subscribe(subject, func(msg *nats.Msg) {
		var load ServiceLoad
		if err := json.Unmarshal(msg.Data, &load); err != nil {
			log.Printf("Failed to parse load report from %s: %v", msg.Subject, err)
			return
		}

		load.LastSeen = time.Now()

		m.mu.Lock()
		m.services[load.ServiceName] = &load
		m.mu.Unlock()
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	log.Printf("Load monitor started, listening on %s", subject)
	return nil
}

func (m *LoadMonitor) GetServices() []ServiceLoad {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var services []ServiceLoad
	for _, s := range m.services {
		services = append(services, *s)
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].ServiceName < services[j].ServiceName
	})

	return services
}

func (m *LoadMonitor) Close() {
	if m.nats != nil {
		m.nats.Close()
	}
}

func main() {
	var (
		natsURL  = flag.String("nats", "nats://127.0.0.1:4222", "NATS server URL")
		topic    = flag.String("topic", "monitoring.travellai", "Load report topic prefix")
		onceMode = flag.Bool("once", false, "Collect for a few seconds, print, and exit")
	)
	flag.Parse()

	monitor, err := NewLoadMonitor(*natsURL)
	if err != nil {
		log.Fatalf("Failed to create load monitor: %v", err)
	}
	defer monitor.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := monitor.Start(*topic); err != nil {
		log.Fatalf("Failed to start load monitor: %v", err)
	}

	if *onceMode {
		time.Sleep(3 * time.Second)
		printServices(monitor.GetServices())
		return
	}

	runDashboard(ctx, monitor)
}

func printServices(services []ServiceLoad) {
	if len(services) == 0 {
		fmt.Println("No service load reports received")
		return
	}

	for _, s := range services {
		fmt.Printf("%s\n", s.ServiceName)
		fmt.Printf("   Status: %s\n", s.Status)
		fmt.Printf("   Pending: %d  Active: %d  Threshold: %d\n", s.PendingRequests, s.ActiveRequests, s.Threshold)
		fmt.Printf("   Last Seen: %v ago\n", time.Since(s.LastSeen).Truncate(time.Second))
		fmt.Println()
	}
}

func runDashboard(ctx context.Context, monitor *LoadMonitor) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
			return
		case <-ticker.C:
			renderDashboard(monitor.GetServices())
		}
	}
}

func renderDashboard(services []ServiceLoad) {
	// Clear screen and move to top
	fmt.Print("\033[2J\033[H")

	fmt.Printf("Service Load Monitor - %s\n\n", time.Now().Format("15:04:05"))

	if len(services) == 0 {
		fmt.Println("Waiting for load reports...")
		return
	}

	fmt.Printf("%-20s %-10s %-10s %-10s %-12s\n",
		"SERVICE", "STATUS", "PENDING", "ACTIVE", "LAST_SEEN")
	fmt.Printf("%-20s %-10s %-10s %-10s %-12s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 10), strings.Repeat("-", 10),
		strings.Repeat("-", 10), strings.Repeat("-", 12))

	for _, s := range services {
		status := s.Status
		if time.Since(s.LastSeen) > time.Minute {
			status = "stale"
		}

		fmt.Printf("%-20s %-10s %-10d %-10d %-12s\n",
			s.ServiceName, status, s.PendingRequests, s.ActiveRequests,
			formatDuration(time.Since(s.LastSeen)))
	}

	fmt.Println("\nPress Ctrl+C to exit")
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
