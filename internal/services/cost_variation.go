package services

import (
	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/utils"
)

// costVariationDelta is the single cost-adjustment formula used by both
// generation paths. index is 0-based, totalDays >= 1.
//
// Edge days (arrival/departure) are lighter, the middle third of the trip is
// heavier, everything else gets a small bump, and a linear per-day increment
// keeps daily totals trending upward so no two days look alike.
func costVariationDelta(index, totalDays int) int {
	base := 0
	switch {
	case index == 0 || index == totalDays-1:
		base = -500
	case index >= totalDays/3 && index <= (2*totalDays+2)/3:
		base = 800
	default:
		base = 200
	}
	return base + index*150
}

// applyCostVariation adjusts each day's aggregate cost in place using
// costVariationDelta. It is a one-time transform for documents whose costs
// were produced elsewhere (the external-model path); the mock path bakes the
// same delta in at synthesis time and never goes through here.
func applyCostVariation(doc *response_models.ItineraryDocument) {
	totalDays := len(doc.DailyItinerary)
	if totalDays == 0 {
		return
	}

	for i := range doc.DailyItinerary {
		current := utils.ParseINR(doc.DailyItinerary[i].DailyEstimatedCost)
		doc.DailyItinerary[i].DailyEstimatedCost = utils.FormatINR(current + costVariationDelta(i, totalDays))
	}

	enforceDistinctNeighborCosts(doc)
}

// enforceDistinctNeighborCosts guarantees the generation requirement that no
// two consecutive days share an identical daily total. The bump is
// deterministic so the whole pipeline stays reproducible.
func enforceDistinctNeighborCosts(doc *response_models.ItineraryDocument) {
	for i := 1; i < len(doc.DailyItinerary); i++ {
		prev := utils.ParseINR(doc.DailyItinerary[i-1].DailyEstimatedCost)
		cur := utils.ParseINR(doc.DailyItinerary[i].DailyEstimatedCost)
		if cur == prev {
			doc.DailyItinerary[i].DailyEstimatedCost = utils.FormatINR(cur + 50)
		}
	}
}
