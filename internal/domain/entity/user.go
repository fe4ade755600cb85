package entity

import (
	"time"
)

type User struct {
	ID              string     `json:"id" firestore:"id"`
	Email           string     `json:"email,omitempty" firestore:"email"`
	FirstName       string     `json:"firstName" firestore:"firstName"`
	LastName        string     `json:"lastName" firestore:"lastName"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty" firestore:"profileImageUrl,omitempty"`
	Phone           string     `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location        string     `json:"location,omitempty" firestore:"location,omitempty"`
	Pincode         string     `json:"pincode,omitempty" firestore:"pincode,omitempty"`
	Points          int        `json:"points" firestore:"points"`
	IsPremium       bool       `json:"isPremium" firestore:"isPremium"`
	PremiumExpires  *time.Time `json:"premiumExpiresAt,omitempty" firestore:"premiumExpiresAt,omitempty"`
	IsAdmin         bool       `json:"isAdmin" firestore:"isAdmin"`
	Rating          float64    `json:"rating" firestore:"rating"`
	TotalReviews    int        `json:"totalReviews" firestore:"totalReviews"`
	CreatedAt       time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// PublicUser is the profile other users may see.
type PublicUser struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL string  `json:"profileImageUrl,omitempty"`
	Location        string  `json:"location,omitempty"`
	IsPremium       bool    `json:"isPremium"`
	Rating          float64 `json:"rating"`
	TotalReviews    int     `json:"totalReviews"`
}

func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Location:        u.Location,
		IsPremium:       u.IsPremium,
		Rating:          u.Rating,
		TotalReviews:    u.TotalReviews,
	}
}
