package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type TransactionRepository interface {
	// Append writes the ledger entry and applies its delta to the user's
	// points in one transaction, returning the new balance.
	Append(ctx context.Context, txn *entity.Transaction) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
