package models

// Destination is one row of the worldwide travel cities dataset.
type Destination struct {
	City             string  `json:"city"`
	Country          string  `json:"country"`
	Region           string  `json:"region"`
	BudgetLevel      string  `json:"budget_level"`
	BaseScore        float64 `json:"base_score"`
	ShortDescription string  `json:"short_description,omitempty"`

	// Affinity scores per travel type, 0..1 after normalization.
	Affinities map[string]float64 `json:"-"`
}

// Recommendation is a scored destination returned to the caller.
type Recommendation struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	IdealTime   string  `json:"ideal_time"`
}

// ItineraryDay is a single day of a generated itinerary.
type ItineraryDay struct {
	Day  int    `json:"day"`
	Date string `json:"date"`
	City string `json:"city"`
	Plan string `json:"plan"`
}

// FoodItem is one dish of the food dataset.
type FoodItem struct {
	Dish       string  `json:"dish"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Category   string  `json:"category"`
	PriceRange float64 `json:"price_range"`
}

// BusRoute is one route of the transport dataset.
type BusRoute struct {
	RouteID string `json:"route_id"`
	City    string `json:"city"`
	Origin  string `json:"origin"`
	Dest    string `json:"dest"`
}

// TransportSummary aggregates per-city transport information.
type TransportSummary struct {
	City           string     `json:"city"`
	BusRoutes      []BusRoute `json:"bus_routes,omitempty"`
	AvgCongestion  float64    `json:"avg_congestion,omitempty"`
	BestTravelTime string     `json:"best_travel_time,omitempty"`
}

// WeatherReport is the normalized shape both weather providers map into.
type WeatherReport struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feels_like"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    int     `json:"pressure"`
}

// CurrencyResult is a completed conversion.
type CurrencyResult struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}

// Translation is a completed translation, pronunciation optional.
type Translation struct {
	Text          string `json:"text"`
	Pronunciation string `json:"pronunciation,omitempty"`
}
