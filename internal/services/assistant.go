package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/render"
	"github.com/tejashreee29/travellai/internal/repository"
)

type ChatRequest struct {
	ReqID   string `json:"req_id,omitempty"`
	Message string `json:"message"`
}

type ChatReply struct {
	ReqID      string `json:"req_id"`
	Reply      string `json:"reply"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// Responder generates an assistant reply for a prompt.
type Responder interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

const assistantPrompt = `You are a helpful travel assistant for a travel planning platform called TravelPlan.
The platform helps users with:
- Destination recommendations (based on travel type and budget)
- Food recommendations for cities
- Transportation information
- Travel itinerary generation
- Weather information: Users can check weather forecasts for any city using the Weather page
- Currency conversion: Users can convert between currencies using the Currency Converter page with real-time exchange rates
- Translation tools

When users ask about:
- Currency or exchange rates: Guide them to use the Currency Converter page, or provide general information about currency exchange. Mention that the platform has a currency converter tool.
- Weather or climate: Guide them to use the Weather page to check current weather for any city, or provide general weather information about destinations. Mention that the platform has a weather tool.

Provide helpful, concise, and friendly responses about travel planning.
Keep your responses conversational and avoid using markdown formatting (no **, no *, no #, no __, no _, no etc.).
Just use plain text without any formatting symbols.

User question: %s

Assistant response:`

const errorReply = "I'm sorry, I encountered an error. Please try again later."

type AssistantService struct {
	model      Responder
	fallback   *FallbackResponder
	repo       repository.Repository
	monitoring *MonitoringService
	timeout    time.Duration
}

func NewAssistantService(model Responder, repo repository.Repository, monitoring *MonitoringService, timeout time.Duration) *AssistantService {
	return &AssistantService{
		model:      model,
		fallback:   NewFallbackResponder(),
		repo:       repo,
		monitoring: monitoring,
		timeout:    timeout,
	}
}

// ProcessChat answers one user message. The configured model is preferred;
// any model failure degrades to the rule-based responder so the widget
// always gets a usable reply.
func (s *AssistantService) ProcessChat(ctx context.Context, req ChatRequest, source string) (reply *ChatReply, err error) {
	start := time.Now()

	if req.ReqID == "" {
		req.ReqID = ulid.Make().String()
	}

	// Accepted but not yet processing.
	s.monitoring.IncrementPending()

	// Service-level crash recovery
	defer func() {
		if r := recover(); r != nil {
			duration := time.Since(start)
			errStr := fmt.Sprintf("service panic: %v", r)

			panicLog := &models.RequestLog{
				Timestamp:  start,
				ReqID:      req.ReqID,
				Source:     source,
				Message:    req.Message,
				Reply:      "[CRASHED]",
				Provider:   "none",
				DurationMs: duration.Milliseconds(),
				Status:     "panic",
				Error:      errStr,
			}
			s.repo.Request().LogRequest(ctx, panicLog)

			reply = &ChatReply{
				ReqID:      req.ReqID,
				Reply:      errorReply,
				DurationMs: duration.Milliseconds(),
				Error:      errStr,
			}
			err = fmt.Errorf("service panic: %v", r)
		}
	}()

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		s.monitoring.DecrementPending()
		return nil, fmt.Errorf("empty message")
	}

	s.monitoring.DecrementPending()
	s.monitoring.IncrementActive()
	defer s.monitoring.DecrementActive()

	provider := "fallback"
	var text string

	if s.model != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.timeout)
		generated, genErr := s.model.Generate(genCtx, fmt.Sprintf(assistantPrompt, msg))
		cancel()

		if genErr != nil {
			slog.Warn("Model generation failed, using fallback responder",
				"req_id", req.ReqID,
				"model", s.model.Name(),
				"error", genErr)
		} else if stripped := render.Strip(generated); stripped != "" {
			provider = s.model.Name()
			text = stripped
		}
	}

	if text == "" {
		text = s.fallback.Respond(msg)
	}

	duration := time.Since(start)

	requestLog := &models.RequestLog{
		Timestamp:  start,
		ReqID:      req.ReqID,
		Source:     source,
		Message:    msg,
		Reply:      text,
		MessageLen: len(msg),
		Provider:   provider,
		DurationMs: duration.Milliseconds(),
		Status:     "ok",
	}
	s.repo.Request().LogRequest(ctx, requestLog)

	return &ChatReply{
		ReqID:      req.ReqID,
		Reply:      text,
		DurationMs: duration.Milliseconds(),
	}, nil
}

// GetRequestLogs retrieves request logs through the repository interface
func (s *AssistantService) GetRequestLogs(ctx context.Context, limit int) ([]*models.RequestLog, error) {
	return s.repo.Request().GetRequestLogs(ctx, limit)
}

// GetRepository returns the repository for use by other services
func (s *AssistantService) GetRepository() repository.Repository {
	return s.repo
}
