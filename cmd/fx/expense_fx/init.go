package expensefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbuddy/internal/api/controllers"
	"travelbuddy/internal/repositories"
	"travelbuddy/internal/services"
)

var Module = fx.Provide(
	provideExpenseRepo, provideExpenseService, provideExpenseController)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripRepo repositories.TripRepository,
) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, tripRepo)
}

func provideExpenseController(expenseService services.ExpenseServiceInterface) *controllers.ExpenseController {
	return controllers.NewExpenseController(expenseService)
}
