package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/services"
)

func newTestTravelHandler(repo *memRepo) *TravelHandler {
	return NewTravelHandler(
		services.NewRecommendService(repo),
		services.NewGuideService(repo),
		services.NewWeatherService(""),
		services.NewCurrencyService(""),
		services.NewTranslatorService(nil, time.Second),
	)
}

func TestDestinationsEndpoint(t *testing.T) {
	repo := &memRepo{destinations: []*models.Destination{
		{City: "Bali", Country: "Indonesia", Region: "Southeast Asia", BudgetLevel: "medium", BaseScore: 8,
			Affinities: map[string]float64{"beaches": 0.95}},
		{City: "Prague", Country: "Czechia", Region: "Europe", BudgetLevel: "low", BaseScore: 7,
			Affinities: map[string]float64{"beaches": 0.05}},
	}}
	h := newTestTravelHandler(repo)

	body := `{"travel_type": "beaches", "budget": "medium", "top_n": 2}`
	req := httptest.NewRequest(http.MethodPost, "/api/destinations", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.handleDestinations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Results []models.Recommendation `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].City != "Bali" {
		t.Errorf("Expected Bali first, got %s", resp.Results[0].City)
	}
}

func TestDestinationsValidation(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/destinations", strings.NewReader(`{"travel_type": "", "budget": ""}`))
	w := httptest.NewRecorder()
	h.handleDestinations(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	w = httptest.NewRecorder()
	h.handleDestinations(w, getReq)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", w.Code)
	}
}

func TestItineraryEndpoint(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	body := `{"city": "Rome", "start_date": "2026-09-01", "end_date": "2026-09-03"}`
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.handleItinerary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		City      string                `json:"city"`
		Itinerary []models.ItineraryDay `json:"itinerary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if resp.City != "Rome" || len(resp.Itinerary) != 3 {
		t.Errorf("Expected 3 days for Rome, got %d for %s", len(resp.Itinerary), resp.City)
	}
}

func TestItineraryBadDates(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	body := `{"city": "Rome", "start_date": "2026-09-10", "end_date": "2026-09-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.handleItinerary(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Error body should be JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected an error message")
	}
}

func TestFoodEndpoint(t *testing.T) {
	repo := &memRepo{foods: []*models.FoodItem{
		{Dish: "Pad Thai", City: "Bangkok", Country: "Thailand", Category: "Street Food", PriceRange: 2.5},
	}}
	h := newTestTravelHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/food?city=Bangkok", nil)
	w := httptest.NewRecorder()
	h.handleFood(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Items []models.FoodItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Dish != "Pad Thai" {
		t.Errorf("Unexpected items: %+v", resp.Items)
	}
}

func TestTransportEndpoint(t *testing.T) {
	repo := &memRepo{
		routes:     []models.BusRoute{{RouteID: "7", City: "Delhi", Origin: "A", Dest: "B"}},
		congestion: 0.4,
		hasTraffic: true,
		peakHour:   "09:00",
	}
	h := newTestTravelHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/transport?city=Delhi", nil)
	w := httptest.NewRecorder()
	h.handleTransport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var summary models.TransportSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if summary.City != "Delhi" || len(summary.BusRoutes) != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if summary.BestTravelTime != "09:00" {
		t.Errorf("Wrong peak hour: %s", summary.BestTravelTime)
	}
}

func TestTransportRequiresCity(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/transport", nil)
	w := httptest.NewRecorder()
	h.handleTransport(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCurrencyEndpoint(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	body := `{"amount": 100, "from": "USD", "to": "EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/currency", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.handleCurrency(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.CurrencyResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Bad response JSON: %v", err)
	}
	if result.Converted != 85.0 {
		t.Errorf("Expected 85.0, got %v", result.Converted)
	}
}

func TestCurrencyValidation(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	body := `{"amount": -1, "from": "USD", "to": "EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/currency", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.handleCurrency(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCurrenciesAndLanguagesLists(t *testing.T) {
	h := newTestTravelHandler(&memRepo{})

	w := httptest.NewRecorder()
	h.handleCurrencies(w, httptest.NewRequest(http.MethodGet, "/api/currencies", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for currencies, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "USD") {
		t.Error("Currency list should include USD")
	}

	w = httptest.NewRecorder()
	h.handleLanguages(w, httptest.NewRequest(http.MethodGet, "/api/languages", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for languages, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Spanish") {
		t.Error("Language list should include Spanish")
	}
}
