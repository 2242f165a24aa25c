package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nats-io/nats.go"

	"github.com/tejashreee29/travellai/internal/config"
	"github.com/tejashreee29/travellai/internal/repository"
	"github.com/tejashreee29/travellai/internal/services"
	"github.com/tejashreee29/travellai/internal/store"
	"github.com/tejashreee29/travellai/pkg/server"
)

func main() {
	var envFile = flag.String("env", "", "Optional .env file to load")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize database
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Log startup event
	db.Event("info", "startup", "Server starting", map[string]interface{}{
		"service":   cfg.ServiceName,
		"http_addr": cfg.HTTPAddr,
		"db_path":   cfg.DBPath,
	})

	// Seed travel datasets on first run
	if err := db.Seed(cfg.DataDir); err != nil {
		db.Event("error", "seed.failed", "Dataset seeding failed", map[string]interface{}{
			"data_dir": cfg.DataDir,
			"error":    err.Error(),
		})
		slog.Error("Failed to seed datasets", "error", err)
		os.Exit(1)
	}

	// Initialize repository
	repo := repository.NewSQLiteRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the Gemini responder. The assistant degrades to canned
	// replies when no API key is configured.
	var responder services.Responder
	if cfg.GeminiAPIKey != "" {
		gemini, err := services.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			db.Event("error", "model.failed", "Gemini client initialization failed", map[string]interface{}{
				"model": cfg.GeminiModel,
				"error": err.Error(),
			})
			slog.Error("Failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		responder = gemini
		db.Event("info", "model.ready", "Gemini client ready", map[string]interface{}{
			"model": cfg.GeminiModel,
		})
	} else {
		slog.Warn("GEMINI_API_KEY not set, using fallback responses only")
	}

	// Connect NATS for load telemetry. The service runs fine without it.
	var monitoring *services.MonitoringService
	if nc, err := nats.Connect(cfg.NatsURL); err != nil {
		slog.Warn("NATS unavailable, load reporting disabled", "nats_url", cfg.NatsURL, "error", err)
	} else {
		defer nc.Close()
		monitoring = services.NewMonitoringService(nc, cfg)
	}

	// Initialize services
	assistantService := services.NewAssistantService(responder, repo, monitoring, cfg.RequestTimeout)
	recommendService := services.NewRecommendService(repo)
	guideService := services.NewGuideService(repo)
	weatherService := services.NewWeatherService(cfg.WeatherAPIKey)
	currencyService := services.NewCurrencyService(cfg.CurrencyAPIKey)
	translatorService := services.NewTranslatorService(responder, cfg.RequestTimeout)

	db.Event("info", "services.init", "Services initialized", map[string]interface{}{
		"http_addr": cfg.HTTPAddr,
		"nats_url":  cfg.NatsURL,
	})

	// Start HTTP server
	httpServer := server.NewServer(cfg.HTTPAddr,
		assistantService, recommendService, guideService,
		weatherService, currencyService, translatorService)

	db.Event("info", "server.ready", "Server ready to accept requests", map[string]interface{}{
		"http_addr": cfg.HTTPAddr,
		"service":   cfg.ServiceName,
	})

	go func() {
		if err := httpServer.Start(ctx); err != nil {
			db.Event("error", "http.failed", "HTTP server failed", map[string]interface{}{
				"error": err.Error(),
			})
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	go func() {
		if err := monitoring.Start(ctx); err != nil {
			slog.Error("Monitoring service failed", "error", err)
		}
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("Shutting down server")
	cancel()
}
