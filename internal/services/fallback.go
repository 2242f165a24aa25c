package services

import "strings"

// FallbackResponder answers with canned guidance when no model is configured
// or the model call fails.
type FallbackResponder struct {
	rules []fallbackRule
}

type fallbackRule struct {
	keywords []string
	reply    string
}

func NewFallbackResponder() *FallbackResponder {
	return &FallbackResponder{
		rules: []fallbackRule{
			{[]string{"destination", "place"}, "Go to Destinations and select your travel type and budget."},
			{[]string{"food"}, "Open the Food page to explore local cuisines."},
			{[]string{"transport"}, "Check the Transport page for metro, bus and taxi options."},
			{[]string{"itinerary"}, "Use the Destinations page to generate your travel itinerary."},
			{[]string{"budget"}, "Select your budget while choosing destinations."},
			{[]string{"currency", "exchange", "convert"}, "Use the Currency Converter page to convert between different currencies with real-time exchange rates."},
			{[]string{"weather", "climate", "temperature"}, "Use the Weather page to check current weather conditions and forecasts for any city worldwide."},
		},
	}
}

func (f *FallbackResponder) Respond(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range f.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return "I can help with destinations, food, transport, weather, currency conversion, and travel planning."
}
