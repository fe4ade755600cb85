package usecase

import (
	"context"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	publisher        Publisher
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, publisher Publisher) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// Notify persists first; the live push is best effort.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, notificationType, title, message string, metadata map[string]interface{}) (*entity.Notification, error) {
	n := &entity.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     notificationType,
		Metadata: metadata,
	}

	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Error("Notify Error: %v", err)
		return nil, err
	}

	if uc.publisher != nil {
		uc.publisher.SendToUser(userID, &ws.Frame{Type: ws.FrameNotification, Notification: n})
	}
	return n, nil
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) (*entity.Notification, error) {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, errors.Forbidden("You can only update your own notifications", nil)
	}
	if n.IsRead {
		return n, nil
	}

	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

// notifyQuietly is used for side-effect notifications that must never fail
// the operation that triggered them.
func notifyQuietly(ctx context.Context, n Notifier, op, userID, notificationType, title, message string, metadata map[string]interface{}) {
	if n == nil {
		return
	}
	if _, err := n.Notify(ctx, userID, notificationType, title, message, metadata); err != nil {
		logger.Warn("%s Warning: failed to notify %s: %v", op, userID, err)
	}
}
