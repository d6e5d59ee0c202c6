package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/utils"
)

// stubClient returns a canned response or error in place of a real provider.
type stubClient struct {
	response string
	err      error
	called   bool
}

func (s *stubClient) GenerateItinerary(_ context.Context, _, _ string) (string, error) {
	s.called = true
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func providerDocument(t *testing.T, days int) string {
	t.Helper()
	doc := response_models.ItineraryDocument{}
	for i := 0; i < days; i++ {
		doc.DailyItinerary = append(doc.DailyItinerary, response_models.DayPlan{
			Day:                99, // deliberately wrong, normalization fixes it
			Date:               "1999-01-01",
			Title:              "Model Day",
			DailyEstimatedCost: "₹3,000",
		})
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}

func TestLLMGeneratorNormalizesDaysAndDates(t *testing.T) {
	client := &stubClient{response: "```json\n" + providerDocument(t, 3) + "\n```"}
	gen := NewLLMItineraryGenerator(client)

	req := goaRequest()
	req.EndDate = "2024-01-12" // 3 days

	doc, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if !client.called {
		t.Fatal("provider client was never invoked")
	}

	wantDates := []string{"2024-01-10", "2024-01-11", "2024-01-12"}
	for i, day := range doc.DailyItinerary {
		if day.Day != i+1 {
			t.Errorf("day %d numbered %d", i+1, day.Day)
		}
		if day.Date != wantDates[i] {
			t.Errorf("day %d date = %s, want %s", i+1, day.Date, wantDates[i])
		}
	}
	if doc.TripOverview.Destination != "Goa" {
		t.Errorf("destination = %q, want Goa", doc.TripOverview.Destination)
	}
}

func TestLLMGeneratorAppliesCostVariation(t *testing.T) {
	client := &stubClient{response: providerDocument(t, 3)}
	gen := NewLLMItineraryGenerator(client)

	req := goaRequest()
	req.EndDate = "2024-01-12"

	doc, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	want := []string{"₹2,500", "₹3,950", "₹2,800"}
	for i, day := range doc.DailyItinerary {
		if day.DailyEstimatedCost != want[i] {
			t.Errorf("day %d cost = %s, want %s", i+1, day.DailyEstimatedCost, want[i])
		}
	}
}

func TestLLMGeneratorProviderError(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	gen := NewLLMItineraryGenerator(client)

	_, err := gen.Generate(context.Background(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationProvider) {
		t.Fatalf("got %v, want ErrGenerationProvider", err)
	}
}

func TestLLMGeneratorParseError(t *testing.T) {
	client := &stubClient{response: "Sorry, I cannot plan that trip."}
	gen := NewLLMItineraryGenerator(client)

	_, err := gen.Generate(context.Background(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationParse) {
		t.Fatalf("got %v, want ErrGenerationParse", err)
	}
}

func TestLLMGeneratorEmptyItineraryIsParseError(t *testing.T) {
	client := &stubClient{response: `{"daily_itinerary": []}`}
	gen := NewLLMItineraryGenerator(client)

	_, err := gen.Generate(context.Background(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationParse) {
		t.Fatalf("got %v, want ErrGenerationParse", err)
	}
}

func TestLLMGeneratorShortItineraryIsParseError(t *testing.T) {
	// 2 days of content for a 5-day window must never reach persistence
	// with total_days claiming 5.
	client := &stubClient{response: providerDocument(t, 2)}
	gen := NewLLMItineraryGenerator(client)

	doc, err := gen.Generate(context.Background(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationParse) {
		t.Fatalf("got %v, want ErrGenerationParse", err)
	}
	if doc != nil {
		t.Errorf("short itinerary returned a document with %d days", len(doc.DailyItinerary))
	}
}

func TestLLMGeneratorInvalidDatesSkipProvider(t *testing.T) {
	client := &stubClient{response: providerDocument(t, 3)}
	gen := NewLLMItineraryGenerator(client)

	req := goaRequest()
	req.EndDate = "2024-01-01"

	if _, err := gen.Generate(context.Background(), req); !errors.Is(err, utils.ErrInvalidDateRange) {
		t.Fatalf("got %v, want ErrInvalidDateRange", err)
	}
	if client.called {
		t.Error("provider should not be called for an invalid date range")
	}
}
