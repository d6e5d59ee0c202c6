package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error)
	UpdateTrip(ctx context.Context, accountID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID string) error
}

type TripService struct {
	tripRepo            repositories.TripRepository
	notificationService NotificationServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	notificationService NotificationServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:            tripRepo,
		notificationService: notificationService,
	}
}

var tripStatuses = map[string]bool{
	"planned":   true,
	"ongoing":   true,
	"completed": true,
}

func (t *TripService) CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	start, err := utils.ParseDateOnly(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	end, err := utils.ParseDateOnly(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	trip := &db_models.Trip{
		AccountID:   ownerID,
		Name:        request.Name,
		Destination: request.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      request.Budget,
		Currency:    "INR",
		Status:      "planned",
		Description: request.Description,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	go func() {
		tripID := trip.ID
		err := t.notificationService.Notify(context.Background(), ownerID,
			"Trip created",
			fmt.Sprintf("Your trip %q to %s is on the books. Start adding expenses to track your budget.", trip.Name, trip.Destination),
			"trip", &tripID)
		if err != nil {
			log.Printf("failed to create trip notification: %v", err)
		}
	}()

	resp := toTripResponse(trip)
	return &resp, nil
}

func (t *TripService) ListTrips(ctx context.Context, accountID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, toTripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.FindByIdWithExpenses(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}

	detail := &response_models.TripDetailResponse{
		TripResponse: toTripResponse(trip),
		Expenses:     make([]response_models.ExpenseResponse, 0, len(trip.Expenses)),
	}
	for i := range trip.Expenses {
		detail.Expenses = append(detail.Expenses, toExpenseResponse(&trip.Expenses[i]))
	}
	return detail, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, accountID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.findOwned(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		trip.Name = *request.Name
	}
	if request.Destination != nil {
		trip.Destination = *request.Destination
	}
	if request.StartDate != nil {
		start, err := utils.ParseDateOnly(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidDateRange
		}
		trip.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseDateOnly(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidDateRange
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if request.Budget != nil {
		if *request.Budget <= 0 {
			return nil, utils.ErrInvalidInput
		}
		trip.Budget = *request.Budget
	}
	if request.Description != nil {
		trip.Description = *request.Description
	}
	if request.Status != nil {
		if !tripStatuses[*request.Status] {
			return nil, utils.ErrInvalidInput
		}
		trip.Status = *request.Status
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, accountID, tripID string) error {
	trip, err := t.findOwned(ctx, accountID, tripID)
	if err != nil {
		return err
	}
	if err := t.tripRepo.Delete(ctx, trip.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) findOwned(ctx context.Context, accountID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	var totalSpent float64
	for i := range trip.Expenses {
		totalSpent += trip.Expenses[i].Amount
	}

	return response_models.TripResponse{
		ID:           trip.ID.String(),
		Name:         trip.Name,
		Destination:  trip.Destination,
		StartDate:    utils.FormatDateOnly(trip.StartDate),
		EndDate:      utils.FormatDateOnly(trip.EndDate),
		Budget:       trip.Budget,
		Currency:     trip.Currency,
		Status:       trip.Status,
		Description:  trip.Description,
		TotalSpent:   totalSpent,
		Remaining:    trip.Budget - totalSpent,
		ExpenseCount: len(trip.Expenses),
	}
}
