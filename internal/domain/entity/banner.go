package entity

import "time"

type Banner struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	LinkURL     string    `json:"linkUrl,omitempty" firestore:"linkUrl,omitempty"`
	Target      int       `json:"target,omitempty" firestore:"target,omitempty"`
	Collected   int       `json:"collected" firestore:"collected"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}
