package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tejashreee29/travellai/internal/handlers"
	"github.com/tejashreee29/travellai/internal/services"
)

type Server struct {
	httpAddr          string
	assistantService  *services.AssistantService
	recommendService  *services.RecommendService
	guideService      *services.GuideService
	weatherService    *services.WeatherService
	currencyService   *services.CurrencyService
	translatorService *services.TranslatorService
}

func NewServer(
	httpAddr string,
	assistantService *services.AssistantService,
	recommendService *services.RecommendService,
	guideService *services.GuideService,
	weatherService *services.WeatherService,
	currencyService *services.CurrencyService,
	translatorService *services.TranslatorService,
) *Server {
	return &Server{
		httpAddr:          httpAddr,
		assistantService:  assistantService,
		recommendService:  recommendService,
		guideService:      guideService,
		weatherService:    weatherService,
		currencyService:   currencyService,
		translatorService: translatorService,
	}
}

func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	assistantHandler := handlers.NewAssistantHandler(s.assistantService)
	assistantHandler.RegisterRoutes(mux)
	slog.Info("Registered assistant endpoints", "endpoints", []string{"/chat", "/chat/logs", "/healthz"})

	travelHandler := handlers.NewTravelHandler(s.recommendService, s.guideService, s.weatherService, s.currencyService, s.translatorService)
	travelHandler.RegisterRoutes(mux)
	slog.Info("Registered travel endpoints", "endpoints", []string{
		"/api/destinations", "/api/itinerary", "/api/food", "/api/transport",
		"/api/weather", "/api/currency", "/api/translate",
	})

	widgetHandler := handlers.NewWidgetHandler()
	widgetHandler.RegisterRoutes(mux)
	slog.Info("Registered widget endpoints", "endpoints", []string{"/", "/widget.js"})

	srv := &http.Server{Addr: s.httpAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down HTTP server")
		srv.Shutdown(context.Background())
	}()

	slog.Info("HTTP server starting", "addr", s.httpAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
