package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/memcache"
	"travelbuddy/pkg/utils"
)

const (
	planCacheTTL  = time.Hour
	maxTravelers  = 20
	maxTripLength = 30
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, accountID string, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	ListItineraries(ctx context.Context, accountID string) ([]response_models.ItinerarySummary, error)
	GetItinerary(ctx context.Context, accountID, itineraryID string) (*response_models.GenerateItineraryResponse, error)
	ToggleFavorite(ctx context.Context, accountID, itineraryID string) (bool, error)
	DeleteItinerary(ctx context.Context, accountID, itineraryID string) error
}

type ItineraryService struct {
	generator           ItineraryGenerator
	fallback            ItineraryGenerator // nil unless mock fallback is enabled
	itineraryRepo       repositories.ItineraryRepository
	notificationService NotificationServiceInterface
	planCache           memcache.PlanCacheStore
}

func NewItineraryService(
	generator ItineraryGenerator,
	fallback ItineraryGenerator,
	itineraryRepo repositories.ItineraryRepository,
	notificationService NotificationServiceInterface,
	planCache memcache.PlanCacheStore,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:           generator,
		fallback:            fallback,
		itineraryRepo:       itineraryRepo,
		notificationService: notificationService,
		planCache:           planCache,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, accountID string, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if strings.TrimSpace(request.Destination) == "" {
		return nil, utils.ErrMissingDestination
	}
	if request.Travelers < 0 || request.Travelers > maxTravelers {
		return nil, utils.ErrInvalidTravelers
	}

	_, totalDays, err := deriveTripWindow(request)
	if err != nil {
		return nil, err
	}
	if totalDays > maxTripLength {
		return nil, utils.ErrInvalidDateRange
	}

	doc, err := s.generatePlan(ctx, request)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, utils.ErrGenerationParse
	}

	travelers := request.Travelers
	if travelers < 1 {
		travelers = 2
	}

	itinerary := &db_models.Itinerary{
		AccountID:   ownerID,
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		TotalDays:   totalDays,
		Travelers:   travelers,
		Document:    datatypes.JSON(raw),
	}

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	go func() {
		itineraryID := itinerary.ID
		err := s.notificationService.Notify(context.Background(), ownerID,
			"Itinerary ready",
			fmt.Sprintf("Your %d-day plan for %s is ready to explore.", totalDays, request.Destination),
			"itinerary", &itineraryID)
		if err != nil {
			log.Printf("failed to create itinerary notification: %v", err)
		}
	}()

	return &response_models.GenerateItineraryResponse{
		ItineraryID: itinerary.ID.String(),
		Data:        doc,
	}, nil
}

// generatePlan consults the preference-keyed cache first, then the
// configured generator, then (when enabled) the deterministic fallback for
// provider outages. Parse failures are never masked by the fallback; they
// indicate a contract break worth surfacing.
func (s *ItineraryService) generatePlan(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	key := preferencesKey(request)

	if cached, ok := s.planCache.Get(key); ok {
		if doc, ok := cached.(*response_models.ItineraryDocument); ok {
			return doc, nil
		}
	}

	doc, err := s.generator.Generate(ctx, request)
	if err != nil && s.fallback != nil && errors.Is(err, utils.ErrGenerationProvider) {
		log.Printf("itinerary provider unavailable, falling back to offline generator: %v", err)
		doc, err = s.fallback.Generate(ctx, request)
	}
	if err != nil {
		return nil, err
	}

	s.planCache.Set(key, doc, planCacheTTL)
	return doc, nil
}

func preferencesKey(request request_models.GenerateItineraryRequest) string {
	raw, _ := json.Marshal(request)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountID string) ([]response_models.ItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for i := range itineraries {
		it := &itineraries[i]
		summaries = append(summaries, response_models.ItinerarySummary{
			ID:          it.ID.String(),
			Destination: it.Destination,
			StartDate:   it.StartDate,
			EndDate:     it.EndDate,
			TotalDays:   it.TotalDays,
			Travelers:   it.Travelers,
			IsFavorite:  it.IsFavorite,
			CreatedAt:   it.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, accountID, itineraryID string) (*response_models.GenerateItineraryResponse, error) {
	itinerary, err := s.findOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal(itinerary.Document, &doc); err != nil {
		log.Printf("stored itinerary %s has unreadable document: %v", itineraryID, err)
		return nil, utils.ErrGenerationParse
	}

	return &response_models.GenerateItineraryResponse{
		ItineraryID: itinerary.ID.String(),
		Data:        &doc,
	}, nil
}

func (s *ItineraryService) ToggleFavorite(ctx context.Context, accountID, itineraryID string) (bool, error) {
	itinerary, err := s.findOwned(ctx, accountID, itineraryID)
	if err != nil {
		return false, err
	}

	itinerary.IsFavorite = !itinerary.IsFavorite
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return false, utils.ErrDatabaseError
	}
	return itinerary.IsFavorite, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, accountID, itineraryID string) error {
	itinerary, err := s.findOwned(ctx, accountID, itineraryID)
	if err != nil {
		return err
	}
	if err := s.itineraryRepo.Delete(ctx, itinerary.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) findOwned(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.AccountID.String() != accountID {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}
