package entity

import (
	"time"
)

const (
	ListingTypeDonate = "donate"
	ListingTypeRent   = "rent"

	ItemStatusAvailable = "available"
	ItemStatusReserved  = "reserved"
	ItemStatusTaken     = "taken"
)

type Item struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"userId" firestore:"userId"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description" firestore:"description"`
	Category     string    `json:"category" firestore:"category"`
	Type         string    `json:"type" firestore:"type"`
	Condition    string    `json:"condition,omitempty" firestore:"condition,omitempty"`
	Price        float64   `json:"price,omitempty" firestore:"price,omitempty"`
	PriceUnit    string    `json:"priceUnit,omitempty" firestore:"priceUnit,omitempty"`
	Location     string    `json:"location" firestore:"location"`
	Pincode      string    `json:"pincode" firestore:"pincode"`
	Images       []string  `json:"images" firestore:"images"`
	Status       string    `json:"status" firestore:"status"`
	IsFeatured   bool      `json:"isFeatured" firestore:"isFeatured"`
	Rating       float64   `json:"rating" firestore:"rating"`
	TotalReviews int       `json:"totalReviews" firestore:"totalReviews"`
	ViewCount    int       `json:"viewCount" firestore:"viewCount"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ItemFilter selects items or postings. Zero values are ignored.
type ItemFilter struct {
	Category string
	Type     string
	Pincode  string
	Search   string
	Limit    int
}

func IsValidItemStatus(status string) bool {
	switch status {
	case ItemStatusAvailable, ItemStatusReserved, ItemStatusTaken:
		return true
	}
	return false
}
