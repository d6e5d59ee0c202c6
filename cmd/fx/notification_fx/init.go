package notificationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/repositories"
	"travelbuddy/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService, provideNotificationController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo)
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
