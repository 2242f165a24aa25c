package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
)

// Currencies offered by the converter.
var Currencies = []struct {
	Code string `json:"code"`
	Name string `json:"name"`
}{
	{"USD", "US Dollar"}, {"EUR", "Euro"}, {"GBP", "British Pound"},
	{"JPY", "Japanese Yen"}, {"AUD", "Australian Dollar"}, {"CAD", "Canadian Dollar"},
	{"CHF", "Swiss Franc"}, {"CNY", "Chinese Yuan"}, {"INR", "Indian Rupee"},
	{"SGD", "Singapore Dollar"}, {"AED", "UAE Dirham"}, {"NZD", "New Zealand Dollar"},
}

// Approximate rates used without an API key, or when the API errors.
var demoRates = map[string]map[string]float64{
	"USD": {"EUR": 0.85, "GBP": 0.79, "INR": 83.0, "JPY": 150.0},
	"EUR": {"USD": 1.18, "GBP": 0.93, "INR": 97.5, "JPY": 176.0},
	"GBP": {"USD": 1.27, "EUR": 1.08, "INR": 105.0, "JPY": 190.0},
}

type CurrencyService struct {
	apiKey string
	client *http.Client

	// Overridable for tests.
	BaseURL string
}

func NewCurrencyService(apiKey string) *CurrencyService {
	return &CurrencyService{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: "https://v6.exchangerate-api.com/v6",
	}
}

// Convert converts amount between two currency codes. Live rates are used
// when an API key is configured; otherwise the demo table, with rate 1.0 for
// unknown pairs.
func (s *CurrencyService) Convert(ctx context.Context, amount float64, from, to string) (*models.CurrencyResult, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, fmt.Errorf("both currencies are required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	rate := demoRate(from, to)
	if s.apiKey != "" {
		liveRate, err := s.fetchRate(ctx, from, to)
		if err != nil {
			slog.Warn("Live rate lookup failed, using demo rates", "from", from, "to", to, "error", err)
		} else {
			rate = liveRate
		}
	}

	return &models.CurrencyResult{
		Amount:    amount,
		From:      from,
		To:        to,
		Rate:      rate,
		Converted: math.Round(amount*rate*100) / 100,
	}, nil
}

func (s *CurrencyService) fetchRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", s.BaseURL, s.apiKey, from)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate API status %d", resp.StatusCode)
	}

	var data struct {
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("decode rates: %w", err)
	}

	rate, ok := data.ConversionRates[to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s", to)
	}
	return rate, nil
}

func demoRate(from, to string) float64 {
	if from == to {
		return 1.0
	}
	if rates, ok := demoRates[from]; ok {
		if rate, ok := rates[to]; ok {
			return rate
		}
	}
	return 1.0
}
