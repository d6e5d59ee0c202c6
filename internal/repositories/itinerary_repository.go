package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindById(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Itinerary, error)
	Update(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, id string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (i *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return i.db.WithContext(ctx).Create(itinerary).Error
}

func (i *itineraryRepository) FindById(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := i.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (i *itineraryRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := i.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (i *itineraryRepository) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return i.db.WithContext(ctx).Save(itinerary).Error
}

func (i *itineraryRepository) Delete(ctx context.Context, id string) error {
	return i.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
}
