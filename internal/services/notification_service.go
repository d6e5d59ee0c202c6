package services

import (
	"context"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

type NotificationServiceInterface interface {
	Notify(ctx context.Context, accountID uuid.UUID, title, message, notifType string, relatedID *uuid.UUID) error
	Create(ctx context.Context, accountID string, request request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error)
	List(ctx context.Context, accountID string, unreadOnly bool) (*response_models.NotificationListResponse, error)
	UnreadCount(ctx context.Context, accountID string) (int64, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
	MarkAllRead(ctx context.Context, accountID string) error
	Delete(ctx context.Context, accountID, notificationID string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// Notify records an in-app notification. Callers on the hot path invoke it
// from a goroutine and only log failures; a lost notification must never
// fail the operation that produced it.
func (n *NotificationService) Notify(ctx context.Context, accountID uuid.UUID, title, message, notifType string, relatedID *uuid.UUID) error {
	if notifType == "" {
		notifType = "general"
	}

	notification := &db_models.Notification{
		AccountID: accountID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		RelatedID: relatedID,
	}

	if err := n.notificationRepo.Insert(ctx, notification); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Create services the explicit API route; Notify covers internal producers.
func (n *NotificationService) Create(ctx context.Context, accountID string, request request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var relatedID *uuid.UUID
	if request.RelatedID != "" {
		parsed, err := uuid.Parse(request.RelatedID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		relatedID = &parsed
	}

	notifType := request.Type
	if notifType == "" {
		notifType = "general"
	}

	notification := &db_models.Notification{
		AccountID: ownerID,
		Title:     request.Title,
		Message:   request.Message,
		Type:      notifType,
		RelatedID: relatedID,
	}
	if err := n.notificationRepo.Insert(ctx, notification); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toNotificationResponse(notification)
	return &resp, nil
}

func (n *NotificationService) UnreadCount(ctx context.Context, accountID string) (int64, error) {
	count, err := n.notificationRepo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (n *NotificationService) List(ctx context.Context, accountID string, unreadOnly bool) (*response_models.NotificationListResponse, error) {
	notifications, err := n.notificationRepo.ListByAccount(ctx, accountID, unreadOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	unread, err := n.notificationRepo.CountUnread(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.NotificationListResponse{
		Notifications: make([]response_models.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, notification := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(&notification))
	}

	return resp, nil
}

func (n *NotificationService) MarkRead(ctx context.Context, accountID, notificationID string) error {
	notification, err := n.findOwned(ctx, accountID, notificationID)
	if err != nil {
		return err
	}
	if err := n.notificationRepo.MarkRead(ctx, notification.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) MarkAllRead(ctx context.Context, accountID string) error {
	if err := n.notificationRepo.MarkAllRead(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) Delete(ctx context.Context, accountID, notificationID string) error {
	notification, err := n.findOwned(ctx, accountID, notificationID)
	if err != nil {
		return err
	}
	if err := n.notificationRepo.Delete(ctx, notification.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) findOwned(ctx context.Context, accountID, notificationID string) (*db_models.Notification, error) {
	notification, err := n.notificationRepo.FindById(ctx, notificationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if notification == nil || notification.AccountID.String() != accountID {
		return nil, utils.ErrNotificationNotFound
	}
	return notification, nil
}

func toNotificationResponse(notification *db_models.Notification) response_models.NotificationResponse {
	resp := response_models.NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
	if notification.RelatedID != nil {
		resp.RelatedID = notification.RelatedID.String()
	}
	return resp
}
