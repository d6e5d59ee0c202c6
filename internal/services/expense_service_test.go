package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/pkg/utils"
)

type fakeExpenseRepo struct {
	stored map[string]*db_models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{stored: make(map[string]*db_models.Expense)}
}

func (f *fakeExpenseRepo) Insert(_ context.Context, expense *db_models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.stored[expense.ID.String()] = expense
	return nil
}

func (f *fakeExpenseRepo) FindById(_ context.Context, id string) (*db_models.Expense, error) {
	return f.stored[id], nil
}

func (f *fakeExpenseRepo) ListByAccount(_ context.Context, accountID string, filter request_models.ExpenseFilter) ([]db_models.Expense, error) {
	var out []db_models.Expense
	for _, e := range f.stored {
		if e.AccountID.String() != accountID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.TripID != "" && (e.TripID == nil || e.TripID.String() != filter.TripID) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, expense *db_models.Expense) error {
	f.stored[expense.ID.String()] = expense
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	delete(f.stored, id)
	return nil
}

func createExpenseRequest() request_models.CreateExpenseRequest {
	return request_models.CreateExpenseRequest{
		Title:    "Beach shack lunch",
		SpentBy:  "Asha",
		Amount:   1200,
		Category: "Food & Dining",
		Date:     "2024-01-11",
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo(), newFakeTripRepo())
	owner := uuid.New().String()

	req := createExpenseRequest()
	req.Category = "Bribes"
	if _, err := svc.CreateExpense(context.Background(), owner, req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput for unknown category", err)
	}

	resp, err := svc.CreateExpense(context.Background(), owner, createExpenseRequest())
	if err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}
	if resp.Currency != "INR" {
		t.Errorf("currency = %q, want INR", resp.Currency)
	}
	if resp.PaymentMethod != "" && resp.PaymentMethod != "card" {
		t.Errorf("payment method = %q, want default", resp.PaymentMethod)
	}
}

func TestCreateExpenseTripOwnership(t *testing.T) {
	tripRepo := newFakeTripRepo()
	svc := NewExpenseService(newFakeExpenseRepo(), tripRepo)

	owner := uuid.New()
	otherTrip := &db_models.Trip{AccountID: uuid.New()}
	otherTrip.ID = uuid.New()
	tripRepo.stored[otherTrip.ID.String()] = otherTrip

	req := createExpenseRequest()
	req.TripID = otherTrip.ID.String()
	if _, err := svc.CreateExpense(context.Background(), owner.String(), req); !errors.Is(err, utils.ErrTripNotFound) {
		t.Errorf("got %v, want ErrTripNotFound for someone else's trip", err)
	}

	myTrip := &db_models.Trip{AccountID: owner}
	myTrip.ID = uuid.New()
	tripRepo.stored[myTrip.ID.String()] = myTrip

	req.TripID = myTrip.ID.String()
	resp, err := svc.CreateExpense(context.Background(), owner.String(), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.TripID != myTrip.ID.String() {
		t.Errorf("trip id = %q, want %q", resp.TripID, myTrip.ID.String())
	}
}

func TestExpenseStatsBreakdown(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo, newFakeTripRepo())
	owner := uuid.New().String()

	seed := []request_models.CreateExpenseRequest{
		{Title: "Hotel", SpentBy: "Asha", Amount: 6000, Category: "Accommodation", Date: "2024-01-10"},
		{Title: "Lunch", SpentBy: "Asha", Amount: 1500, Category: "Food & Dining", Date: "2024-01-11"},
		{Title: "Dinner", SpentBy: "Ravi", Amount: 2500, Category: "Food & Dining", Date: "2024-01-11"},
	}
	for _, req := range seed {
		if _, err := svc.CreateExpense(context.Background(), owner, req); err != nil {
			t.Fatalf("seed expense failed: %v", err)
		}
	}

	stats, err := svc.GetStats(context.Background(), owner, request_models.ExpenseFilter{})
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalAmount != 10000 {
		t.Errorf("total = %v, want 10000", stats.TotalAmount)
	}
	if stats.TotalExpenses != 3 {
		t.Errorf("count = %d, want 3", stats.TotalExpenses)
	}

	byCategory := make(map[string]string)
	for _, line := range stats.CategoryBreakdown {
		byCategory[line.Category] = line.Percentage
	}
	if byCategory["Accommodation"] != "60.0" {
		t.Errorf("accommodation share = %q, want 60.0", byCategory["Accommodation"])
	}
	if byCategory["Food & Dining"] != "40.0" {
		t.Errorf("food share = %q, want 40.0", byCategory["Food & Dining"])
	}
}

func TestGetExpenseOwnerScoped(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo(), newFakeTripRepo())
	owner := uuid.New().String()

	created, err := svc.CreateExpense(context.Background(), owner, createExpenseRequest())
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}

	got, err := svc.GetExpense(context.Background(), owner, created.ID)
	if err != nil {
		t.Fatalf("get expense: %v", err)
	}
	if got.Title != "Beach shack lunch" || got.Amount != 1200 {
		t.Errorf("got %q/%v, want seeded expense", got.Title, got.Amount)
	}

	stranger := uuid.New().String()
	if _, err := svc.GetExpense(context.Background(), stranger, created.ID); !errors.Is(err, utils.ErrExpenseNotFound) {
		t.Errorf("stranger get: got %v, want ErrExpenseNotFound", err)
	}
}
