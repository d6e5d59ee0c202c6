package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindById(ctx context.Context, id string) (*db_models.Trip, error)
	FindByIdWithExpenses(ctx context.Context, id string) (*db_models.Trip, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) FindById(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (t *tripRepository) FindByIdWithExpenses(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Preload("Expenses").
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (t *tripRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Preload("Expenses").
		Where("account_id = ?", accountID).
		Order("start_date DESC").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (t *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

// Delete removes the trip and every expense tagged with it in one
// transaction so orphan expenses never survive a trip deletion.
func (t *tripRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).Delete(&db_models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Trip{}, "id = ?", id).Error
	})
}
