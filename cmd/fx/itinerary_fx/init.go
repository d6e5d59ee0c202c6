package itineraryfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/repositories"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/memcache"
	"travelbuddy/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryGenerator, provideItineraryService, provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

// provideItineraryGenerator picks the generation backend from
// ITINERARY_PROVIDER: "openai", "gemini", or anything else for the
// offline generator. A missing API key also lands on the offline path so
// a bare dev checkout still serves itineraries.
func provideItineraryGenerator() services.ItineraryGenerator {
	provider := os.Getenv("ITINERARY_PROVIDER")

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		return services.NewMockItineraryGenerator()
	}

	if apiKey == "" {
		log.Printf("no API key configured for provider %q, using offline itinerary generator", provider)
		return services.NewMockItineraryGenerator()
	}

	client, err := utils.NewItineraryClient(provider, apiKey, model)
	if err != nil {
		log.Printf("failed to init %s client, using offline itinerary generator: %v", provider, err)
		return services.NewMockItineraryGenerator()
	}
	return services.NewLLMItineraryGenerator(client)
}

func provideItineraryService(
	generator services.ItineraryGenerator,
	itineraryRepo repositories.ItineraryRepository,
	notificationService services.NotificationServiceInterface,
	planCache memcache.PlanCacheStore,
) services.ItineraryServiceInterface {
	var fallback services.ItineraryGenerator
	if os.Getenv("ITINERARY_FALLBACK_TO_MOCK") == "true" {
		fallback = services.NewMockItineraryGenerator()
	}
	return services.NewItineraryService(generator, fallback, itineraryRepo, notificationService, planCache)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
