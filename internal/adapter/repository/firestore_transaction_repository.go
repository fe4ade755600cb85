package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Append(ctx context.Context, txn *entity.Transaction) (int, error) {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	userRef := r.client.Collection(usersCollection).Doc(txn.UserID)

	var balance int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var user entity.User
		if err := txGetDoc(tx, userRef, "User", &user); err != nil {
			return err
		}

		balance = user.Points + txn.Delta()
		if balance < 0 {
			return errors.Conflict("Insufficient points")
		}

		now := time.Now().UTC()
		txn.CreatedAt = now

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "points", Value: balance},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		return tx.Create(r.client.Collection(transactionsCollection).Doc(txn.ID), txn)
	})
	if err != nil {
		return 0, txError("Failed to record transaction", err)
	}

	return balance, nil
}

func (r *firestoreTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	query := r.client.Collection(transactionsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Transaction](query.Documents(ctx), "transactions")
}
