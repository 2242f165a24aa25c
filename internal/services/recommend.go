package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tejashreee29/travellai/internal/models"
	"github.com/tejashreee29/travellai/internal/repository"
)

// Scoring weights: base score 40%, travel type affinity 40%, budget match 20%.
const (
	weightBase   = 0.4
	weightTravel = 0.4
	weightBudget = 0.2

	defaultAffinity = 0.3
	neutralScore    = 0.5

	maxItineraryDays = 30
)

var travelTypeDescriptions = map[string]string{
	"beaches":   "Perfect for beach lovers! Enjoy pristine coastlines, crystal-clear waters, and relaxing beachside activities.",
	"culture":   "Rich in history and heritage! Explore museums, historical sites, and immerse yourself in local traditions.",
	"adventure": "Thrilling experiences await! Perfect for adrenaline seekers with exciting outdoor activities and adventures.",
	"nature":    "Nature's paradise! Discover breathtaking landscapes, wildlife, and serene natural environments.",
	"nightlife": "Vibrant nightlife scene! Experience exciting nightlife, entertainment, and social activities.",
	"cuisine":   "Foodie's dream destination! Savor authentic local flavors and culinary experiences.",
	"wellness":  "Rejuvenate and relax! Ideal for wellness retreats, spas, and peaceful getaways.",
	"urban":     "Modern city experience! Explore urban attractions, shopping, and contemporary culture.",
}

const genericDescription = "A wonderful destination offering unique experiences and memorable moments."

var itineraryActivities = []string{
	"City sightseeing & landmarks",
	"Local food exploration",
	"Cultural & heritage tour",
	"Nature & relaxation",
	"Shopping & markets",
	"Adventure activities",
	"Leisure & cafe hopping",
}

type RecommendService struct {
	repo repository.Repository
}

func NewRecommendService(repo repository.Repository) *RecommendService {
	return &RecommendService{repo: repo}
}

// Recommend scores the destinations dataset against the requested travel
// type and budget and returns the top N, deduplicated by city+country.
func (s *RecommendService) Recommend(ctx context.Context, travelType, budget string, topN int) ([]models.Recommendation, error) {
	travelType = strings.ToLower(strings.TrimSpace(travelType))
	budget = strings.ToLower(strings.TrimSpace(budget))
	if travelType == "" || budget == "" {
		return nil, fmt.Errorf("travel type and budget level are required")
	}
	if topN <= 0 {
		topN = 5
	}

	dests, err := s.repo.Destination().ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	if len(dests) == 0 {
		return nil, nil
	}

	baseScores := normalized(dests, func(d *models.Destination) float64 { return d.BaseScore })
	travelScores := affinityScores(dests, travelType)

	hasBudgets := false
	for _, d := range dests {
		if d.BudgetLevel != "" {
			hasBudgets = true
			break
		}
	}

	type scored struct {
		dest  *models.Destination
		score float64
	}
	results := make([]scored, 0, len(dests))
	for i, d := range dests {
		budgetScore := neutralScore
		if hasBudgets {
			if strings.EqualFold(d.BudgetLevel, budget) {
				budgetScore = 1
			} else {
				budgetScore = 0
			}
		}
		final := baseScores[i]*weightBase + travelScores[i]*weightTravel + budgetScore*weightBudget
		results = append(results, scored{dest: d, score: final})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	seen := make(map[string]bool)
	recs := make([]models.Recommendation, 0, topN)
	for _, r := range results {
		key := strings.ToLower(r.dest.City) + "|" + strings.ToLower(r.dest.Country)
		if seen[key] {
			continue
		}
		seen[key] = true

		desc := r.dest.ShortDescription
		if desc == "" {
			desc = travelTypeDescriptions[travelType]
			if desc == "" {
				desc = genericDescription
			}
		}

		recs = append(recs, models.Recommendation{
			City:        r.dest.City,
			Country:     r.dest.Country,
			Score:       r.score,
			Description: desc,
			IdealTime:   idealTime(r.dest.Region),
		})
		if len(recs) == topN {
			break
		}
	}
	return recs, nil
}

// BuildItinerary produces one entry per day between start and end inclusive,
// rotating through the activity templates.
func (s *RecommendService) BuildItinerary(city, startDate, endDate string) ([]models.ItineraryDay, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("both start and end dates are required")
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: use YYYY-MM-DD", startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: use YYYY-MM-DD", endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxItineraryDays {
		return nil, fmt.Errorf("itinerary cannot exceed %d days", maxItineraryDays)
	}

	itinerary := make([]models.ItineraryDay, 0, days)
	for i := 0; i < days; i++ {
		itinerary = append(itinerary, models.ItineraryDay{
			Day:  i + 1,
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			City: city,
			Plan: itineraryActivities[i%len(itineraryActivities)],
		})
	}
	return itinerary, nil
}

// normalized maps a column to 0..1 across the dataset; a flat column maps to
// the neutral score.
func normalized(dests []*models.Destination, get func(*models.Destination) float64) []float64 {
	min, max := get(dests[0]), get(dests[0])
	for _, d := range dests[1:] {
		v := get(d)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(dests))
	for i, d := range dests {
		if max > min {
			out[i] = (get(d) - min) / (max - min)
		} else {
			out[i] = neutralScore
		}
	}
	return out
}

func affinityScores(dests []*models.Destination, travelType string) []float64 {
	col := travelType
	if _, ok := dests[0].Affinities[col]; !ok {
		// Loose match against known columns before giving up.
		col = ""
		for name := range dests[0].Affinities {
			if strings.Contains(name, travelType) || strings.Contains(travelType, name) {
				col = name
				break
			}
		}
	}
	if col == "" {
		out := make([]float64, len(dests))
		for i := range out {
			out[i] = defaultAffinity
		}
		return out
	}
	return normalized(dests, func(d *models.Destination) float64 { return d.Affinities[col] })
}

func idealTime(region string) string {
	r := strings.ToLower(region)
	switch {
	case strings.Contains(r, "europe"):
		return "Best time: May to September"
	case strings.Contains(r, "asia"):
		if strings.Contains(r, "south") || strings.Contains(r, "southeast") {
			return "Best time: November to March"
		}
		return "Best time: April to June, September to November"
	case strings.Contains(r, "tropical"), strings.Contains(r, "equator"):
		return "Best time: December to April"
	case strings.Contains(r, "america"):
		if strings.Contains(r, "north") {
			return "Best time: June to September"
		}
		return "Best time: May to October"
	case strings.Contains(r, "africa"):
		return "Best time: October to April"
	default:
		return "Best time: Spring and Autumn (March-May, September-November)"
	}
}
