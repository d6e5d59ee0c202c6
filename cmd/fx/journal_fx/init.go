package journalfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/repositories"
	"travelbuddy/internal/services"
)

var Module = fx.Provide(
	provideJournalRepo, provideJournalService, provideJournalController)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo)
}

func provideJournalController(journalService services.JournalServiceInterface) *controllers.JournalController {
	return controllers.NewJournalController(journalService)
}
