package services

import (
	"context"
	"strings"
	"testing"

	"github.com/tejashreee29/travellai/internal/models"
)

func testDestinations() []*models.Destination {
	return []*models.Destination{
		{City: "Barcelona", Country: "Spain", Region: "Europe", BudgetLevel: "medium", BaseScore: 8.0,
			Affinities: map[string]float64{"beaches": 0.9, "culture": 0.8, "nature": 0.4}},
		{City: "Kyoto", Country: "Japan", Region: "East Asia", BudgetLevel: "high", BaseScore: 9.0,
			Affinities: map[string]float64{"beaches": 0.1, "culture": 1.0, "nature": 0.7}},
		{City: "Goa", Country: "India", Region: "South Asia", BudgetLevel: "low", BaseScore: 8.5,
			Affinities: map[string]float64{"beaches": 1.0, "culture": 0.3, "nature": 0.6}},
	}
}

func TestRecommendRanksByAffinityAndBudget(t *testing.T) {
	svc := NewRecommendService(&stubRepo{destinations: testDestinations()})

	recs, err := svc.Recommend(context.Background(), "beaches", "low", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(recs))
	}

	// Goa has the top beach affinity and the only budget match.
	if recs[0].City != "Goa" {
		t.Errorf("Expected Goa first, got %s", recs[0].City)
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("Results not sorted by score: %v > %v", recs[i].Score, recs[i-1].Score)
		}
	}
}

func TestRecommendRequiresInputs(t *testing.T) {
	svc := NewRecommendService(&stubRepo{destinations: testDestinations()})

	if _, err := svc.Recommend(context.Background(), "", "low", 3); err == nil {
		t.Error("Expected error for missing travel type")
	}
	if _, err := svc.Recommend(context.Background(), "beaches", "", 3); err == nil {
		t.Error("Expected error for missing budget")
	}
}

func TestRecommendDeduplicatesCities(t *testing.T) {
	dests := testDestinations()
	dests = append(dests, &models.Destination{
		City: "Goa", Country: "India", Region: "South Asia", BudgetLevel: "low", BaseScore: 5.0,
		Affinities: map[string]float64{"beaches": 0.8},
	})
	svc := NewRecommendService(&stubRepo{destinations: dests})

	recs, err := svc.Recommend(context.Background(), "beaches", "low", 10)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	seen := map[string]bool{}
	for _, r := range recs {
		key := r.City + "|" + r.Country
		if seen[key] {
			t.Errorf("Duplicate recommendation for %s", key)
		}
		seen[key] = true
	}
}

func TestRecommendUnknownTravelType(t *testing.T) {
	svc := NewRecommendService(&stubRepo{destinations: testDestinations()})

	// Unknown type still ranks on base score and budget.
	recs, err := svc.Recommend(context.Background(), "stargazing", "medium", 2)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recs))
	}
}

func TestRecommendIdealTimeByRegion(t *testing.T) {
	svc := NewRecommendService(&stubRepo{destinations: testDestinations()})

	recs, err := svc.Recommend(context.Background(), "culture", "medium", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	for _, r := range recs {
		if !strings.HasPrefix(r.IdealTime, "Best time:") {
			t.Errorf("Missing ideal time for %s: %q", r.City, r.IdealTime)
		}
	}
}

func TestBuildItineraryDayCount(t *testing.T) {
	svc := NewRecommendService(&stubRepo{})

	days, err := svc.BuildItinerary("Lisbon", "2026-09-01", "2026-09-05")
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("Expected 5 days, got %d", len(days))
	}

	if days[0].Day != 1 || days[0].Date != "2026-09-01" {
		t.Errorf("Wrong first day: %+v", days[0])
	}
	if days[4].Date != "2026-09-05" {
		t.Errorf("Wrong last day: %+v", days[4])
	}
}

func TestBuildItineraryActivityRotation(t *testing.T) {
	svc := NewRecommendService(&stubRepo{})

	days, err := svc.BuildItinerary("Lisbon", "2026-09-01", "2026-09-09")
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}

	// Day 8 wraps back to the first activity template.
	if days[7].Plan != days[0].Plan {
		t.Errorf("Activities should rotate weekly: %q vs %q", days[7].Plan, days[0].Plan)
	}
	if days[1].Plan == days[0].Plan {
		t.Error("Consecutive days should vary")
	}
}

func TestBuildItineraryValidation(t *testing.T) {
	svc := NewRecommendService(&stubRepo{})

	if _, err := svc.BuildItinerary("", "2026-09-01", "2026-09-05"); err == nil {
		t.Error("Expected error for missing city")
	}
	if _, err := svc.BuildItinerary("Lisbon", "not-a-date", "2026-09-05"); err == nil {
		t.Error("Expected error for invalid start date")
	}
	if _, err := svc.BuildItinerary("Lisbon", "2026-09-05", "2026-09-01"); err == nil {
		t.Error("Expected error when end precedes start")
	}
	if _, err := svc.BuildItinerary("Lisbon", "2026-09-01", "2026-12-01"); err == nil {
		t.Error("Expected error for itinerary over 30 days")
	}
}
