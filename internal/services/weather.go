package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
)

// Descriptions for WMO weather codes used by the keyless provider.
var weatherCodes = map[int]string{
	0: "Clear Sky", 1: "Mainly Clear", 2: "Partly Cloudy", 3: "Overcast",
	45: "Foggy", 48: "Depositing Rime Fog", 51: "Light Drizzle", 53: "Moderate Drizzle",
	56: "Light Freezing Drizzle", 57: "Dense Freezing Drizzle", 61: "Slight Rain",
	63: "Moderate Rain", 65: "Heavy Rain", 66: "Light Freezing Rain",
	67: "Heavy Freezing Rain", 71: "Slight Snow", 73: "Moderate Snow",
	75: "Heavy Snow", 77: "Snow Grains", 80: "Slight Rain Showers",
	81: "Moderate Rain Showers", 82: "Violent Rain Showers", 85: "Slight Snow Showers",
	86: "Heavy Snow Showers", 95: "Thunderstorm", 96: "Thunderstorm with Hail",
	99: "Thunderstorm with Heavy Hail",
}

// WeatherService fetches current conditions. With an OpenWeatherMap key it is
// tried first; the keyless Open-Meteo geocoding+forecast pair is the
// fallback, so the endpoint works out of the box.
type WeatherService struct {
	apiKey string
	client *http.Client

	// Overridable for tests.
	OWMBaseURL     string
	GeocodeBaseURL string
	ForecastURL    string
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		apiKey:         apiKey,
		client:         &http.Client{Timeout: 10 * time.Second},
		OWMBaseURL:     "https://api.openweathermap.org/data/2.5/weather",
		GeocodeBaseURL: "https://geocoding-api.open-meteo.com/v1/search",
		ForecastURL:    "https://api.open-meteo.com/v1/forecast",
	}
}

func (s *WeatherService) Current(ctx context.Context, city string) (*models.WeatherReport, error) {
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}

	if s.apiKey != "" {
		report, err := s.fromOpenWeatherMap(ctx, city)
		if err == nil {
			return report, nil
		}
		slog.Warn("OpenWeatherMap lookup failed, trying free API", "city", city, "error", err)
	}

	return s.fromOpenMeteo(ctx, city)
}

func (s *WeatherService) fromOpenWeatherMap(ctx context.Context, city string) (*models.WeatherReport, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	var data struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}

	status, err := s.getJSON(ctx, s.OWMBaseURL+"?"+q.Encode(), &data)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("openweathermap status %d", status)
	}

	report := &models.WeatherReport{
		City:      data.Name,
		Country:   data.Sys.Country,
		Temp:      int(math.Round(data.Main.Temp)),
		FeelsLike: int(math.Round(data.Main.FeelsLike)),
		Humidity:  data.Main.Humidity,
		Pressure:  data.Main.Pressure,
		WindSpeed: data.Wind.Speed,
	}
	if report.City == "" {
		report.City = city
	}
	report.Description = "N/A"
	report.Icon = "01d"
	if len(data.Weather) > 0 {
		report.Description = data.Weather[0].Description
		report.Icon = data.Weather[0].Icon
	}
	return report, nil
}

func (s *WeatherService) fromOpenMeteo(ctx context.Context, city string) (*models.WeatherReport, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")

	var geo struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	status, err := s.getJSON(ctx, s.GeocodeBaseURL+"?"+q.Encode(), &geo)
	if err != nil {
		return nil, fmt.Errorf("geocode city: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("geocode status %d", status)
	}
	if len(geo.Results) == 0 {
		return nil, fmt.Errorf("city %q not found", city)
	}
	loc := geo.Results[0]

	fq := url.Values{}
	fq.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	fq.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	fq.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,surface_pressure")
	fq.Set("timezone", "auto")

	var forecast struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
			Pressure    float64 `json:"surface_pressure"`
		} `json:"current"`
	}
	status, err = s.getJSON(ctx, s.ForecastURL+"?"+fq.Encode(), &forecast)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("forecast status %d", status)
	}

	cur := forecast.Current
	description, ok := weatherCodes[cur.WeatherCode]
	if !ok {
		description = "Unknown"
	}

	return &models.WeatherReport{
		City:        loc.Name,
		Country:     loc.Country,
		Temp:        int(math.Round(cur.Temperature)),
		FeelsLike:   int(math.Round(cur.Temperature)),
		Description: description,
		Icon:        iconForCode(cur.WeatherCode),
		Humidity:    int(math.Round(cur.Humidity)),
		WindSpeed:   math.Round(cur.WindSpeed*3.6*10) / 10, // m/s to km/h
		Pressure:    int(math.Round(cur.Pressure)),
	}, nil
}

func iconForCode(code int) string {
	switch code {
	case 0, 1:
		return "01d"
	case 2:
		return "02d"
	case 3:
		return "03d"
	default:
		return "50d"
	}
}

func (s *WeatherService) getJSON(ctx context.Context, rawURL string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
