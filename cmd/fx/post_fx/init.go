package postfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/repositories"
	"travelbuddy/internal/services"
)

var Module = fx.Provide(
	providePostRepo, providePostService, providePostController)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(
	postRepo repositories.PostRepository,
	accountRepo repositories.AccountRepository,
) services.PostServiceInterface {
	return services.NewPostService(postRepo, accountRepo)
}

func providePostController(postService services.PostServiceInterface) *controllers.PostController {
	return controllers.NewPostController(postService)
}
