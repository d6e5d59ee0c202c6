package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
)

type JournalRepository interface {
	Insert(ctx context.Context, journal *db_models.Journal) error
	FindById(ctx context.Context, id string) (*db_models.Journal, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Journal, error)
	ListPublic(ctx context.Context, limit int) ([]db_models.Journal, error)
	Update(ctx context.Context, journal *db_models.Journal) error
	Delete(ctx context.Context, id string) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{
		db: db,
	}
}

func (j *journalRepository) Insert(ctx context.Context, journal *db_models.Journal) error {
	return j.db.WithContext(ctx).Create(journal).Error
}

func (j *journalRepository) FindById(ctx context.Context, id string) (*db_models.Journal, error) {
	var journal db_models.Journal
	err := j.db.WithContext(ctx).First(&journal, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &journal, nil
}

func (j *journalRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Journal, error) {
	var journals []db_models.Journal
	err := j.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("trip_date DESC").
		Find(&journals).Error

	if err != nil {
		return nil, err
	}

	return journals, nil
}

func (j *journalRepository) ListPublic(ctx context.Context, limit int) ([]db_models.Journal, error) {
	query := j.db.WithContext(ctx).Where("is_public = ?", true).Order("trip_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var journals []db_models.Journal
	if err := query.Find(&journals).Error; err != nil {
		return nil, err
	}

	return journals, nil
}

func (j *journalRepository) Update(ctx context.Context, journal *db_models.Journal) error {
	return j.db.WithContext(ctx).Save(journal).Error
}

func (j *journalRepository) Delete(ctx context.Context, id string) error {
	return j.db.WithContext(ctx).Delete(&db_models.Journal{}, "id = ?", id).Error
}
