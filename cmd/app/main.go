package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	accountfx "travelbuddy/cmd/fx/account_fx"
	"travelbuddy/cmd/fx/db_fx"
	expensefx "travelbuddy/cmd/fx/expense_fx"
	itineraryfx "travelbuddy/cmd/fx/itinerary_fx"
	journalfx "travelbuddy/cmd/fx/journal_fx"
	"travelbuddy/cmd/fx/memcache_fx"
	notificationfx "travelbuddy/cmd/fx/notification_fx"
	postfx "travelbuddy/cmd/fx/post_fx"
	tripfx "travelbuddy/cmd/fx/trip_fx"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/infra"
	"travelbuddy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		accountfx.Module,
		notificationfx.Module,
		tripfx.Module,
		expensefx.Module,
		journalfx.Module,
		postfx.Module,
		itineraryfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	journalController *controllers.JournalController,
	postController *controllers.PostController,
	notificationController *controllers.NotificationController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		expenseController,
		journalController,
		postController,
		notificationController,
		itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	journalController *controllers.JournalController,
	postController *controllers.PostController,
	notificationController *controllers.NotificationController,
	itineraryController *controllers.ItineraryController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Profile)
	authGroup.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	tripGroup := api.Group("/trips", middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.Create)
	tripGroup.GET("", tripController.List)
	tripGroup.GET("/:id", tripController.Get)
	tripGroup.PUT("/:id", tripController.Update)
	tripGroup.DELETE("/:id", tripController.Delete)

	expenseGroup := api.Group("/expenses", middleware.JWTAuthMiddleware())
	expenseGroup.POST("", expenseController.Create)
	expenseGroup.GET("", expenseController.List)
	expenseGroup.GET("/stats", expenseController.Stats)
	expenseGroup.GET("/:id", expenseController.Get)
	expenseGroup.PUT("/:id", expenseController.Update)
	expenseGroup.DELETE("/:id", expenseController.Delete)

	journalGroup := api.Group("/journal", middleware.JWTAuthMiddleware())
	journalGroup.POST("", journalController.Create)
	journalGroup.GET("", journalController.List)
	journalGroup.GET("/public", journalController.ListPublic)
	journalGroup.GET("/:id", journalController.Get)
	journalGroup.PUT("/:id", journalController.Update)
	journalGroup.DELETE("/:id", journalController.Delete)

	postGroup := api.Group("/posts", middleware.JWTAuthMiddleware())
	postGroup.POST("", postController.Create)
	postGroup.GET("", postController.Feed)
	postGroup.GET("/featured", postController.Featured)
	postGroup.GET("/my-posts", postController.MyPosts)
	postGroup.GET("/:id", postController.Get)
	postGroup.PUT("/:id", postController.Update)
	postGroup.POST("/:id/like", postController.ToggleLike)
	postGroup.POST("/:id/comments", postController.AddComment)
	postGroup.DELETE("/:id/comments/:commentId", postController.DeleteComment)
	postGroup.DELETE("/:id", postController.Delete)

	notificationGroup := api.Group("/notifications", middleware.JWTAuthMiddleware())
	notificationGroup.POST("", notificationController.Create)
	notificationGroup.GET("", notificationController.List)
	notificationGroup.GET("/unread-count", notificationController.UnreadCount)
	notificationGroup.PUT("/read-all", notificationController.MarkAllRead)
	notificationGroup.PUT("/:id/read", notificationController.MarkRead)
	notificationGroup.DELETE("/:id", notificationController.Delete)

	itineraryGroup := api.Group("/itinerary", middleware.JWTAuthMiddleware())
	itineraryGroup.POST("/generate", itineraryController.Generate)
	itineraryGroup.GET("/my-itineraries", itineraryController.List)
	itineraryGroup.GET("/:id", itineraryController.Get)
	itineraryGroup.PATCH("/:id/favorite", itineraryController.ToggleFavorite)
	itineraryGroup.DELETE("/:id", itineraryController.Delete)
}
