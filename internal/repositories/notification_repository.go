package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelbuddy/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	FindById(ctx context.Context, id string) (*db_models.Notification, error)
	ListByAccount(ctx context.Context, accountID string, unreadOnly bool) ([]db_models.Notification, error)
	CountUnread(ctx context.Context, accountID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, accountID string) error
	Delete(ctx context.Context, id string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (n *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) FindById(ctx context.Context, id string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := n.db.WithContext(ctx).First(&notification, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &notification, nil
}

// listLimit caps the listing at the most recent entries; older rows are only
// reachable through deletion housekeeping.
const listLimit = 50

func (n *notificationRepository) ListByAccount(ctx context.Context, accountID string, unreadOnly bool) ([]db_models.Notification, error) {
	query := n.db.WithContext(ctx).Where("account_id = ?", accountID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []db_models.Notification
	err := query.Order("created_at DESC").Limit(listLimit).Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (n *notificationRepository) CountUnread(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("account_id = ? AND read = ?", accountID, false).
		Count(&count).Error

	return count, err
}

func (n *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ?", id).
		UpdateColumn("read", true).Error
}

func (n *notificationRepository) MarkAllRead(ctx context.Context, accountID string) error {
	return n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("account_id = ? AND read = ?", accountID, false).
		UpdateColumn("read", true).Error
}

func (n *notificationRepository) Delete(ctx context.Context, id string) error {
	return n.db.WithContext(ctx).Delete(&db_models.Notification{}, "id = ?", id).Error
}
