package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, accountID string, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	ListExpenses(ctx context.Context, accountID string, filter request_models.ExpenseFilter) ([]response_models.ExpenseResponse, error)
	GetExpense(ctx context.Context, accountID, expenseID string) (*response_models.ExpenseResponse, error)
	GetStats(ctx context.Context, accountID string, filter request_models.ExpenseFilter) (*response_models.ExpenseStatsResponse, error)
	UpdateExpense(ctx context.Context, accountID, expenseID string, request request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, accountID, expenseID string) error
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	tripRepo    repositories.TripRepository
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripRepo repositories.TripRepository,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
	}
}

func (e *ExpenseService) CreateExpense(ctx context.Context, accountID string, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if !db_models.IsValidExpenseCategory(request.Category) {
		return nil, utils.ErrInvalidInput
	}

	date := time.Now()
	if request.Date != "" {
		date, err = utils.ParseDateOnly(request.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
	}

	expense := &db_models.Expense{
		AccountID:   ownerID,
		Title:       request.Title,
		SpentBy:     request.SpentBy,
		Amount:      request.Amount,
		Category:    request.Category,
		Description: request.Description,
		Date:        date,
		Currency:    "INR",
	}
	if request.PaymentMethod != "" {
		expense.PaymentMethod = request.PaymentMethod
	}

	// An expense may be tagged with a trip, in which case the trip must
	// belong to the same account.
	if request.TripID != "" {
		trip, err := e.tripRepo.FindById(ctx, request.TripID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if trip == nil || trip.AccountID != ownerID {
			return nil, utils.ErrTripNotFound
		}
		tripID := trip.ID
		expense.TripID = &tripID
	}

	if err := e.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toExpenseResponse(expense)
	return &resp, nil
}

func (e *ExpenseService) ListExpenses(ctx context.Context, accountID string, filter request_models.ExpenseFilter) ([]response_models.ExpenseResponse, error) {
	expenses, err := e.expenseRepo.ListByAccount(ctx, accountID, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}
	return responses, nil
}

func (e *ExpenseService) GetExpense(ctx context.Context, accountID, expenseID string) (*response_models.ExpenseResponse, error) {
	expense, err := e.findOwned(ctx, accountID, expenseID)
	if err != nil {
		return nil, err
	}

	resp := toExpenseResponse(expense)
	return &resp, nil
}

func (e *ExpenseService) GetStats(ctx context.Context, accountID string, filter request_models.ExpenseFilter) (*response_models.ExpenseStatsResponse, error) {
	filter.Limit = 0 // stats always cover the whole filtered range
	expenses, err := e.expenseRepo.ListByAccount(ctx, accountID, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var total float64
	byCategory := make(map[string]float64)
	for i := range expenses {
		total += expenses[i].Amount
		byCategory[expenses[i].Category] += expenses[i].Amount
	}

	stats := &response_models.ExpenseStatsResponse{
		TotalAmount:       total,
		TotalExpenses:     int64(len(expenses)),
		CategoryBreakdown: make([]response_models.CategoryBreakdown, 0, len(byCategory)),
	}

	// Stable ordering: iterate the category enum, not the map.
	for _, category := range db_models.ExpenseCategories {
		amount, ok := byCategory[category]
		if !ok {
			continue
		}
		percentage := "0.0"
		if total > 0 {
			percentage = fmt.Sprintf("%.1f", amount/total*100)
		}
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, response_models.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	return stats, nil
}

func (e *ExpenseService) UpdateExpense(ctx context.Context, accountID, expenseID string, request request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error) {
	expense, err := e.findOwned(ctx, accountID, expenseID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		expense.Title = *request.Title
	}
	if request.SpentBy != nil {
		expense.SpentBy = *request.SpentBy
	}
	if request.Amount != nil {
		if *request.Amount <= 0 {
			return nil, utils.ErrInvalidInput
		}
		expense.Amount = *request.Amount
	}
	if request.Category != nil {
		if !db_models.IsValidExpenseCategory(*request.Category) {
			return nil, utils.ErrInvalidInput
		}
		expense.Category = *request.Category
	}
	if request.Description != nil {
		expense.Description = *request.Description
	}
	if request.Date != nil {
		date, err := utils.ParseDateOnly(*request.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		expense.Date = date
	}
	if request.PaymentMethod != nil {
		expense.PaymentMethod = *request.PaymentMethod
	}

	if err := e.expenseRepo.Update(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toExpenseResponse(expense)
	return &resp, nil
}

func (e *ExpenseService) DeleteExpense(ctx context.Context, accountID, expenseID string) error {
	expense, err := e.findOwned(ctx, accountID, expenseID)
	if err != nil {
		return err
	}
	if err := e.expenseRepo.Delete(ctx, expense.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ExpenseService) findOwned(ctx context.Context, accountID, expenseID string) (*db_models.Expense, error) {
	expense, err := e.expenseRepo.FindById(ctx, expenseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil || expense.AccountID.String() != accountID {
		return nil, utils.ErrExpenseNotFound
	}
	return expense, nil
}

func toExpenseResponse(expense *db_models.Expense) response_models.ExpenseResponse {
	resp := response_models.ExpenseResponse{
		ID:            expense.ID.String(),
		Title:         expense.Title,
		SpentBy:       expense.SpentBy,
		Amount:        expense.Amount,
		Category:      expense.Category,
		Description:   expense.Description,
		Date:          utils.FormatDateOnly(expense.Date),
		Currency:      expense.Currency,
		PaymentMethod: expense.PaymentMethod,
	}
	if expense.TripID != nil {
		resp.TripID = expense.TripID.String()
	}
	if expense.Trip != nil {
		resp.TripName = expense.Trip.Name
		resp.TripDestination = expense.Trip.Destination
	}
	return resp
}
