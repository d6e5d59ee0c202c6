package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/memcache"
	"travelbuddy/pkg/utils"
)

type fakeGenerator struct {
	calls int
	doc   *response_models.ItineraryDocument
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, _ request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	f.calls++
	return f.doc, f.err
}

type fakeItineraryRepo struct {
	inserted  []*db_models.Itinerary
	insertErr error
	stored    map[string]*db_models.Itinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{stored: make(map[string]*db_models.Itinerary)}
}

func (f *fakeItineraryRepo) Insert(_ context.Context, itinerary *db_models.Itinerary) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	f.inserted = append(f.inserted, itinerary)
	f.stored[itinerary.ID.String()] = itinerary
	return nil
}

func (f *fakeItineraryRepo) FindById(_ context.Context, id string) (*db_models.Itinerary, error) {
	return f.stored[id], nil
}

func (f *fakeItineraryRepo) ListByAccount(_ context.Context, accountID string) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, it := range f.stored {
		if it.AccountID.String() == accountID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeItineraryRepo) Update(_ context.Context, itinerary *db_models.Itinerary) error {
	f.stored[itinerary.ID.String()] = itinerary
	return nil
}

func (f *fakeItineraryRepo) Delete(_ context.Context, id string) error {
	delete(f.stored, id)
	return nil
}

type fakeNotifier struct {
	notified chan string
	err      error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan string, 8)}
}

func (f *fakeNotifier) Notify(_ context.Context, _ uuid.UUID, title, _, _ string, _ *uuid.UUID) error {
	f.notified <- title
	return f.err
}

func (f *fakeNotifier) Create(context.Context, string, request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) List(context.Context, string, bool) (*response_models.NotificationListResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) UnreadCount(context.Context, string) (int64, error) { return 0, nil }
func (f *fakeNotifier) MarkRead(context.Context, string, string) error     { return nil }
func (f *fakeNotifier) MarkAllRead(context.Context, string) error          { return nil }
func (f *fakeNotifier) Delete(context.Context, string, string) error       { return nil }

func sampleDocument() *response_models.ItineraryDocument {
	return &response_models.ItineraryDocument{
		TripOverview: response_models.TripOverview{Destination: "Goa", TotalDays: 5},
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, DailyEstimatedCost: "₹2,000"},
		},
	}
}

func newTestService(gen, fallback ItineraryGenerator, repo *fakeItineraryRepo, notifier *fakeNotifier) ItineraryServiceInterface {
	return NewItineraryService(gen, fallback, repo, notifier, memcache.NewPlanCache())
}

func TestGenerateItineraryPersistsAndNotifies(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	notifier := newFakeNotifier()
	svc := newTestService(gen, nil, repo, notifier)

	accountID := uuid.New().String()
	resp, err := svc.GenerateItinerary(context.Background(), accountID, goaRequest())
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if resp.ItineraryID == "" {
		t.Error("response missing itinerary id")
	}
	if resp.Data == nil || resp.Data.TripOverview.Destination != "Goa" {
		t.Error("response missing generated document")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("persisted %d itineraries, want 1", len(repo.inserted))
	}
	stored := repo.inserted[0]
	if stored.TotalDays != 5 || stored.Travelers != 2 {
		t.Errorf("stored window = %d days / %d travelers, want 5 / 2", stored.TotalDays, stored.Travelers)
	}
	if len(stored.Document) == 0 {
		t.Error("stored itinerary has empty document")
	}

	select {
	case title := <-notifier.notified:
		if title != "Itinerary ready" {
			t.Errorf("notification title = %q", title)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for notification")
	}
}

func TestGenerateItineraryValidation(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	svc := newTestService(gen, nil, newFakeItineraryRepo(), newFakeNotifier())
	accountID := uuid.New().String()

	cases := []struct {
		name    string
		mutate  func(*request_models.GenerateItineraryRequest)
		wantErr error
	}{
		{"missing destination", func(r *request_models.GenerateItineraryRequest) { r.Destination = "  " }, utils.ErrMissingDestination},
		{"negative travelers", func(r *request_models.GenerateItineraryRequest) { r.Travelers = -1 }, utils.ErrInvalidTravelers},
		{"too many travelers", func(r *request_models.GenerateItineraryRequest) { r.Travelers = 21 }, utils.ErrInvalidTravelers},
		{"reversed dates", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "2024-01-01" }, utils.ErrInvalidDateRange},
		{"garbled date", func(r *request_models.GenerateItineraryRequest) { r.StartDate = "Jan 10" }, utils.ErrInvalidDateRange},
		{"month-long trip", func(r *request_models.GenerateItineraryRequest) { r.EndDate = "2024-03-01" }, utils.ErrInvalidDateRange},
	}

	for _, tc := range cases {
		req := goaRequest()
		tc.mutate(&req)
		if _, err := svc.GenerateItinerary(context.Background(), accountID, req); !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}

	if gen.calls != 0 {
		t.Errorf("generator invoked %d times for invalid input", gen.calls)
	}
}

func TestGenerateItineraryCachesByPreferences(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	svc := newTestService(gen, nil, repo, newFakeNotifier())
	accountID := uuid.New().String()

	if _, err := svc.GenerateItinerary(context.Background(), accountID, goaRequest()); err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	if _, err := svc.GenerateItinerary(context.Background(), accountID, goaRequest()); err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1 (cache hit expected)", gen.calls)
	}
	// Each request is still persisted as its own record.
	if len(repo.inserted) != 2 {
		t.Errorf("persisted %d itineraries, want 2", len(repo.inserted))
	}

	changed := goaRequest()
	changed.Themes = []string{"heritage"}
	if _, err := svc.GenerateItinerary(context.Background(), accountID, changed); err != nil {
		t.Fatalf("third generation failed: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times after preference change, want 2", gen.calls)
	}
}

func TestGenerateItineraryProviderErrorNotPersisted(t *testing.T) {
	gen := &fakeGenerator{err: utils.ErrGenerationProvider}
	repo := newFakeItineraryRepo()
	svc := newTestService(gen, nil, repo, newFakeNotifier())

	_, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationProvider) {
		t.Fatalf("got %v, want ErrGenerationProvider", err)
	}
	if len(repo.inserted) != 0 {
		t.Error("failed generation must not be persisted")
	}
}

func TestGenerateItineraryFallsBackToMock(t *testing.T) {
	gen := &fakeGenerator{err: utils.ErrGenerationProvider}
	fallback := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	svc := newTestService(gen, fallback, repo, newFakeNotifier())

	resp, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), goaRequest())
	if err != nil {
		t.Fatalf("generation with fallback failed: %v", err)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback called %d times, want 1", fallback.calls)
	}
	if resp.Data == nil {
		t.Error("fallback response missing document")
	}
}

func TestGenerateItineraryParseErrorSkipsFallback(t *testing.T) {
	gen := &fakeGenerator{err: utils.ErrGenerationParse}
	fallback := &fakeGenerator{doc: sampleDocument()}
	svc := newTestService(gen, fallback, newFakeItineraryRepo(), newFakeNotifier())

	_, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), goaRequest())
	if !errors.Is(err, utils.ErrGenerationParse) {
		t.Fatalf("got %v, want ErrGenerationParse", err)
	}
	if fallback.calls != 0 {
		t.Error("parse failures must not trigger the offline fallback")
	}
}

func TestGenerateItineraryPersistenceError(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	repo.insertErr = errors.New("connection reset")
	svc := newTestService(gen, nil, repo, newFakeNotifier())

	_, err := svc.GenerateItinerary(context.Background(), uuid.New().String(), goaRequest())
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("got %v, want ErrDatabaseError", err)
	}
}

func TestToggleFavoriteOwnerScoped(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	svc := newTestService(gen, nil, repo, newFakeNotifier())

	owner := uuid.New().String()
	resp, err := svc.GenerateItinerary(context.Background(), owner, goaRequest())
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	fav, err := svc.ToggleFavorite(context.Background(), owner, resp.ItineraryID)
	if err != nil || !fav {
		t.Fatalf("toggle on = (%v, %v), want (true, nil)", fav, err)
	}
	fav, err = svc.ToggleFavorite(context.Background(), owner, resp.ItineraryID)
	if err != nil || fav {
		t.Fatalf("toggle off = (%v, %v), want (false, nil)", fav, err)
	}

	stranger := uuid.New().String()
	if _, err := svc.ToggleFavorite(context.Background(), stranger, resp.ItineraryID); !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("got %v, want ErrItineraryNotFound for non-owner", err)
	}
}

func TestGetItineraryRoundTrip(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDocument()}
	repo := newFakeItineraryRepo()
	svc := newTestService(gen, nil, repo, newFakeNotifier())

	owner := uuid.New().String()
	created, err := svc.GenerateItinerary(context.Background(), owner, goaRequest())
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	fetched, err := svc.GetItinerary(context.Background(), owner, created.ItineraryID)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if fetched.Data.TripOverview.Destination != "Goa" {
		t.Errorf("round-tripped destination = %q", fetched.Data.TripOverview.Destination)
	}
}
