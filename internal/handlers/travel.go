package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tejashreee29/travellai/internal/services"
)

type TravelHandler struct {
	recommendService  *services.RecommendService
	guideService      *services.GuideService
	weatherService    *services.WeatherService
	currencyService   *services.CurrencyService
	translatorService *services.TranslatorService
}

func NewTravelHandler(
	recommendService *services.RecommendService,
	guideService *services.GuideService,
	weatherService *services.WeatherService,
	currencyService *services.CurrencyService,
	translatorService *services.TranslatorService,
) *TravelHandler {
	return &TravelHandler{
		recommendService:  recommendService,
		guideService:      guideService,
		weatherService:    weatherService,
		currencyService:   currencyService,
		translatorService: translatorService,
	}
}

func (h *TravelHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/destinations", h.handleDestinations)
	mux.HandleFunc("/api/itinerary", h.handleItinerary)
	mux.HandleFunc("/api/food", h.handleFood)
	mux.HandleFunc("/api/transport", h.handleTransport)
	mux.HandleFunc("/api/weather", h.handleWeather)
	mux.HandleFunc("/api/currency", h.handleCurrency)
	mux.HandleFunc("/api/currencies", h.handleCurrencies)
	mux.HandleFunc("/api/translate", h.handleTranslate)
	mux.HandleFunc("/api/languages", h.handleLanguages)
}

func (h *TravelHandler) handleDestinations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TravelType string `json:"travel_type"`
		Budget     string `json:"budget"`
		TopN       int    `json:"top_n"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	recs, err := h.recommendService.Recommend(r.Context(), req.TravelType, req.Budget, req.TopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, map[string]interface{}{"results": recs})
}

func (h *TravelHandler) handleItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		City      string `json:"city"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	itinerary, err := h.recommendService.BuildItinerary(req.City, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, map[string]interface{}{"city": req.City, "itinerary": itinerary})
}

func (h *TravelHandler) handleFood(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)

	items, err := h.guideService.FindFood(r.Context(), q.Get("city"), q.Get("country"), q.Get("category"), maxPrice)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, map[string]interface{}{"items": items})
}

func (h *TravelHandler) handleTransport(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "city query parameter required", http.StatusBadRequest)
		return
	}

	summary, err := h.guideService.TransportSummary(r.Context(), city)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, summary)
}

func (h *TravelHandler) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "city query parameter required", http.StatusBadRequest)
		return
	}

	report, err := h.weatherService.Current(r.Context(), city)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, report)
}

func (h *TravelHandler) handleCurrency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
		From   string  `json:"from"`
		To     string  `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.currencyService.Convert(r.Context(), req.Amount, req.From, req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, result)
}

func (h *TravelHandler) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, services.Currencies)
}

func (h *TravelHandler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text string `json:"text"`
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	translation, err := h.translatorService.Translate(r.Context(), req.Text, req.From, req.To)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, translation)
}

func (h *TravelHandler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, services.Languages)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
