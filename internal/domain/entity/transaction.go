package entity

import "time"

const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is an append-only points ledger entry.
type Transaction struct {
	ID          string                 `json:"id" firestore:"id"`
	UserID      string                 `json:"userId" firestore:"userId"`
	Type        string                 `json:"type" firestore:"type"`
	Amount      int                    `json:"amount" firestore:"amount"`
	Description string                 `json:"description" firestore:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" firestore:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt" firestore:"createdAt"`
}

// Delta is the signed change this entry applies to a balance.
func (t *Transaction) Delta() int {
	if t.Type == TransactionDebit {
		return -t.Amount
	}
	return t.Amount
}
