package entity

import "time"

// Conversation binds exactly two users. It is only ever created when an
// item request is approved.
type Conversation struct {
	ID             string    `json:"id" firestore:"id"`
	ItemID         string    `json:"itemId,omitempty" firestore:"itemId,omitempty"`
	RequestID      string    `json:"requestId,omitempty" firestore:"requestId,omitempty"`
	ItemRequestID  string    `json:"itemRequestId,omitempty" firestore:"itemRequestId,omitempty"`
	Participant1ID string    `json:"participant1Id" firestore:"participant1Id"`
	Participant2ID string    `json:"participant2Id" firestore:"participant2Id"`
	Participants   []string  `json:"-" firestore:"participants"`
	IsPaid         bool      `json:"isPaid" firestore:"isPaid"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	return userID != "" && (c.Participant1ID == userID || c.Participant2ID == userID)
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID string) string {
	if c.Participant1ID == userID {
		return c.Participant2ID
	}
	return c.Participant1ID
}
