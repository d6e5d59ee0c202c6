package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/utils"
)

const generationTimeout = 30 * time.Second

// llmItineraryGenerator wraps a provider client (OpenAI or Gemini) behind
// the ItineraryGenerator interface. Whatever the model returns is cleaned,
// parsed, normalized to the requested trip window and run through the cost
// post-processor before the caller sees it.
type llmItineraryGenerator struct {
	client  utils.ItineraryClientInterface
	timeout time.Duration
}

func NewLLMItineraryGenerator(client utils.ItineraryClientInterface) ItineraryGenerator {
	return &llmItineraryGenerator{
		client:  client,
		timeout: generationTimeout,
	}
}

func (g *llmItineraryGenerator) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	start, totalDays, err := deriveTripWindow(req)
	if err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := buildInstructions(req, totalDays)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateItinerary(callCtx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("itinerary provider call failed: %v", err)
		return nil, utils.ErrGenerationProvider
	}

	cleaned := utils.CleanJSONResponse(raw)

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		log.Printf("failed to parse itinerary response: %v", err)
		return nil, utils.ErrGenerationParse
	}

	if len(doc.DailyItinerary) < totalDays {
		log.Printf("itinerary response covers %d of %d requested days", len(doc.DailyItinerary), totalDays)
		return nil, utils.ErrGenerationParse
	}

	normalizeDocument(&doc, req, start, totalDays)
	applyCostVariation(&doc)

	return &doc, nil
}

// normalizeDocument repairs the fields models get wrong most often: day
// numbering, dates and the overview counters. Model-authored content is
// kept; only the trip-window bookkeeping is overwritten.
func normalizeDocument(doc *response_models.ItineraryDocument, req request_models.GenerateItineraryRequest, start time.Time, totalDays int) {
	if len(doc.DailyItinerary) > totalDays {
		doc.DailyItinerary = doc.DailyItinerary[:totalDays]
	}
	for i := range doc.DailyItinerary {
		doc.DailyItinerary[i].Day = i + 1
		doc.DailyItinerary[i].Date = utils.FormatDateOnly(utils.AddDays(start, i))
	}

	doc.TripOverview.Destination = req.Destination
	doc.TripOverview.TotalDays = totalDays
	if doc.TripOverview.StartingCity == "" {
		doc.TripOverview.StartingCity = req.StartingCity
	}
}
