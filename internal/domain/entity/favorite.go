package entity

import (
	"time"
)

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	ItemID    string    `json:"itemId,omitempty" firestore:"itemId"`
	RequestID string    `json:"requestId,omitempty" firestore:"requestId"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
