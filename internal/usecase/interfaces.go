package usecase

import (
	"context"
	"time"

	"shareheart/internal/domain/entity"
	ws "shareheart/internal/infrastructure/websocket"
)

// Publisher pushes frames to live connections. *websocket.Manager implements it.
type Publisher interface {
	PublishToConversation(conversationID string, frame *ws.Frame) map[string]bool
	SendToUser(userID string, frame *ws.Frame) bool
}

// Notifier records a notification and pushes it to the recipient.
type Notifier interface {
	Notify(ctx context.Context, userID, notificationType, title, message string, metadata map[string]interface{}) (*entity.Notification, error)
}

// RateLimiter is satisfied by *ratelimit.RateLimiter.
type RateLimiter interface {
	Allow(subject, action string) (bool, time.Duration)
}
