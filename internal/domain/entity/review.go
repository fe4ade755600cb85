package entity

import (
	"time"
)

const (
	ReviewTypeItem = "item"
	ReviewTypeUser = "user"
)

type Review struct {
	ID         string    `json:"id" firestore:"id"`
	ItemID     string    `json:"itemId,omitempty" firestore:"itemId,omitempty"`
	ReviewerID string    `json:"reviewerId" firestore:"reviewerId"`
	RevieweeID string    `json:"revieweeId" firestore:"revieweeId"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment" firestore:"comment"`
	Type       string    `json:"type" firestore:"type"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

// ApplyRating folds one more rating into a running average.
func ApplyRating(avg float64, count, rating int) (float64, int) {
	total := avg*float64(count) + float64(rating)
	count++
	return total / float64(count), count
}
