package services

import (
	"testing"

	"travelbuddy/internal/models/response_models"
)

func TestCostVariationDelta(t *testing.T) {
	cases := []struct {
		name      string
		index     int
		totalDays int
		want      int
	}{
		{"first day of five", 0, 5, -500},
		{"last day of five", 4, 5, -500 + 4*150},
		{"middle day of five", 2, 5, 800 + 2*150},
		{"shoulder day of five", 1, 5, 800 + 150},
		{"single day trip", 0, 1, -500},
		{"first of two", 0, 2, -500},
		{"last of two", 1, 2, -500 + 150},
		{"early day of nine", 1, 9, 200 + 150},
	}

	for _, tc := range cases {
		got := costVariationDelta(tc.index, tc.totalDays)
		if got != tc.want {
			t.Errorf("%s: costVariationDelta(%d, %d) = %d, want %d",
				tc.name, tc.index, tc.totalDays, got, tc.want)
		}
	}
}

func TestApplyCostVariationAdjustsDailyCosts(t *testing.T) {
	doc := &response_models.ItineraryDocument{
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, DailyEstimatedCost: "₹3,000"},
			{Day: 2, DailyEstimatedCost: "₹3,000"},
			{Day: 3, DailyEstimatedCost: "₹3,000"},
		},
	}

	applyCostVariation(doc)

	want := []string{
		"₹2,500", // 3000 - 500
		"₹3,950", // 3000 + 800 + 150
		"₹2,800", // 3000 - 500 + 300
	}
	for i, day := range doc.DailyItinerary {
		if day.DailyEstimatedCost != want[i] {
			t.Errorf("day %d: got %s, want %s", i+1, day.DailyEstimatedCost, want[i])
		}
	}
}

func TestEnforceDistinctNeighborCosts(t *testing.T) {
	doc := &response_models.ItineraryDocument{
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, DailyEstimatedCost: "₹2,000"},
			{Day: 2, DailyEstimatedCost: "₹2,000"},
			{Day: 3, DailyEstimatedCost: "₹2,000"},
		},
	}

	enforceDistinctNeighborCosts(doc)

	for i := 1; i < len(doc.DailyItinerary); i++ {
		if doc.DailyItinerary[i].DailyEstimatedCost == doc.DailyItinerary[i-1].DailyEstimatedCost {
			t.Errorf("days %d and %d have identical daily cost %s",
				i, i+1, doc.DailyItinerary[i].DailyEstimatedCost)
		}
	}
}
