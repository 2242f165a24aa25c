package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tejashreee29/travellai/internal/services"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
}

func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

func (h *AssistantHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/chat", h.handleChat)
	mux.HandleFunc("/chat/logs", h.handleLogs)
	mux.HandleFunc("/healthz", h.handleHealth)
}

func (h *AssistantHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleChat is the widget's collaborator: POST {"message": string} in,
// {"reply": string} out. Bad requests get a 400 with a reply the widget can
// still display; everything downstream degrades inside the service, so a
// well-formed request always produces a usable reply.
func (h *AssistantHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req services.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReply(w, http.StatusBadRequest, services.ChatReply{
			Reply: "Invalid request. Please send JSON data.",
		})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeReply(w, http.StatusBadRequest, services.ChatReply{
			Reply: "Please provide a message.",
		})
		return
	}

	reply, err := h.assistantService.ProcessChat(r.Context(), req, "http.chat")
	if err != nil && reply == nil {
		writeReply(w, http.StatusInternalServerError, services.ChatReply{
			Reply: "I'm sorry, I encountered an error. Please try again later.",
		})
		return
	}

	writeReply(w, http.StatusOK, *reply)
}

func (h *AssistantHandler) handleLogs(w http.ResponseWriter, r *http.Request) {
	// Non-positive values would become an unbounded query, keep the default.
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	logs, err := h.assistantService.GetRequestLogs(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get logs: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(logs)
}

func writeReply(w http.ResponseWriter, status int, reply services.ChatReply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(reply)
}
