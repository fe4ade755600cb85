package entity

import (
	"time"
)

const (
	ItemRequestPending  = "pending"
	ItemRequestApproved = "approved"
	ItemRequestRejected = "rejected"
)

// ItemRequest is a user's interest in a specific item. It leaves pending
// exactly once and never changes status again.
type ItemRequest struct {
	ID          string    `json:"id" firestore:"id"`
	ItemID      string    `json:"itemId" firestore:"itemId"`
	RequesterID string    `json:"requesterId" firestore:"requesterId"`
	Status      string    `json:"status" firestore:"status"`
	Message     string    `json:"message" firestore:"message"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (r *ItemRequest) IsTerminal() bool {
	return r.Status == ItemRequestApproved || r.Status == ItemRequestRejected
}

func IsValidItemRequestStatus(status string) bool {
	switch status {
	case ItemRequestPending, ItemRequestApproved, ItemRequestRejected:
		return true
	}
	return false
}

// IsDecision reports whether status is one an owner may set.
func IsDecision(status string) bool {
	return status == ItemRequestApproved || status == ItemRequestRejected
}
