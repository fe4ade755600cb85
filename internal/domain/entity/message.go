package entity

import "time"

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	SenderID       string    `json:"senderId" firestore:"senderId"`
	Content        string    `json:"content" firestore:"content"`
	IsDeleted      bool      `json:"isDeleted" firestore:"isDeleted"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}
