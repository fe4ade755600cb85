package entity

import "time"

const (
	NotificationChat    = "chat"
	NotificationRequest = "request"
	NotificationPoints  = "points"
	NotificationSystem  = "system"
)

type Notification struct {
	ID        string                 `json:"id" firestore:"id"`
	UserID    string                 `json:"userId" firestore:"userId"`
	Title     string                 `json:"title" firestore:"title"`
	Message   string                 `json:"message" firestore:"message"`
	Type      string                 `json:"type" firestore:"type"`
	IsRead    bool                   `json:"isRead" firestore:"isRead"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" firestore:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt" firestore:"createdAt"`
}
