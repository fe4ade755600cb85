package entity

import (
	"time"
)

const (
	PostingStatusActive    = "active"
	PostingStatusFulfilled = "fulfilled"
	PostingStatusCancelled = "cancelled"
)

// Posting is a "looking for" request that is not tied to any item.
type Posting struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"userId" firestore:"userId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category"`
	Type        string    `json:"type" firestore:"type"`
	Location    string    `json:"location" firestore:"location"`
	Pincode     string    `json:"pincode" firestore:"pincode"`
	MaxPrice    float64   `json:"maxPrice,omitempty" firestore:"maxPrice,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (p *Posting) IsTerminal() bool {
	return p.Status == PostingStatusFulfilled || p.Status == PostingStatusCancelled
}
