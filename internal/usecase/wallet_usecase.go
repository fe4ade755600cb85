package usecase

import (
	"context"
	"fmt"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type WalletUseCase struct {
	transactionRepo repository.TransactionRepository
	notifier        Notifier
}

func NewWalletUseCase(transactionRepo repository.TransactionRepository, notifier Notifier) *WalletUseCase {
	return &WalletUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

type RecordInput struct {
	Type        string
	Amount      int
	Description string
	Metadata    map[string]interface{}
}

// Record appends a ledger entry and applies it to the user's points.
// It returns the entry and the new balance.
func (uc *WalletUseCase) Record(ctx context.Context, userID string, input RecordInput) (*entity.Transaction, int, error) {
	if input.Type != entity.TransactionCredit && input.Type != entity.TransactionDebit {
		return nil, 0, errors.Validation("Type must be credit or debit", "type")
	}
	if input.Amount <= 0 {
		return nil, 0, errors.Validation("Amount must be positive", "amount")
	}

	txn := &entity.Transaction{
		UserID:      userID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Metadata:    input.Metadata,
	}

	balance, err := uc.transactionRepo.Append(ctx, txn)
	if err != nil {
		if errors.Is(err, errors.CodeInternal) {
			logger.Error("RecordTransaction Error: %v", err)
		}
		return nil, 0, err
	}

	verb := "credited to"
	if input.Type == entity.TransactionDebit {
		verb = "debited from"
	}
	notifyQuietly(ctx, uc.notifier, "RecordTransaction", userID, entity.NotificationPoints,
		"Points updated", fmt.Sprintf("%d points %s your wallet. Balance: %d", input.Amount, verb, balance),
		map[string]interface{}{"transactionId": txn.ID, "balance": balance})

	return txn, balance, nil
}

func (uc *WalletUseCase) List(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	txns, err := uc.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []*entity.Transaction{}
	}
	return txns, nil
}
