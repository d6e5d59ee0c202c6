package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	FindById(ctx context.Context, id string) (*db_models.Expense, error)
	ListByAccount(ctx context.Context, accountID string, filter request_models.ExpenseFilter) ([]db_models.Expense, error)
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

func (e *expenseRepository) Insert(ctx context.Context, expense *db_models.Expense) error {
	return e.db.WithContext(ctx).Create(expense).Error
}

func (e *expenseRepository) FindById(ctx context.Context, id string) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := e.db.WithContext(ctx).First(&expense, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}

func (e *expenseRepository) ListByAccount(ctx context.Context, accountID string, filter request_models.ExpenseFilter) ([]db_models.Expense, error) {
	query := e.db.WithContext(ctx).Where("account_id = ?", accountID)

	if filter.TripID != "" {
		query = query.Where("trip_id = ?", filter.TripID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var expenses []db_models.Expense
	err := query.Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (e *expenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return e.db.WithContext(ctx).Save(expense).Error
}

func (e *expenseRepository) Delete(ctx context.Context, id string) error {
	return e.db.WithContext(ctx).Delete(&db_models.Expense{}, "id = ?", id).Error
}
