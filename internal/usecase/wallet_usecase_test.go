package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/internal/domain/entity"
	"shareheart/pkg/errors"
)

func TestRecordAdjustsBalance(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice", 100)
	ctx := context.Background()

	txn, balance, err := env.wallet.Record(ctx, "alice", RecordInput{Type: entity.TransactionDebit, Amount: 40, Description: "Premium"})
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
	assert.Equal(t, "alice", txn.UserID)

	_, balance, err = env.wallet.Record(ctx, "alice", RecordInput{Type: entity.TransactionCredit, Amount: 15})
	require.NoError(t, err)
	assert.Equal(t, 75, balance)

	notifs := env.store.notificationsFor("alice")
	assert.Len(t, notifs, 2)
	for _, n := range notifs {
		assert.Equal(t, entity.NotificationPoints, n.Type)
	}
}

func TestRecordRejectsOverdraft(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice", 10)

	_, _, err := env.wallet.Record(context.Background(), "alice", RecordInput{Type: entity.TransactionDebit, Amount: 11})
	assertCode(t, err, errors.CodeConflict)
	assert.Equal(t, 10, env.store.users["alice"].Points)
	assert.Empty(t, env.store.transactions)
}

func TestRecordValidation(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice", 10)
	ctx := context.Background()

	_, _, err := env.wallet.Record(ctx, "alice", RecordInput{Type: "refund", Amount: 1})
	assertCode(t, err, errors.CodeValidation)

	_, _, err = env.wallet.Record(ctx, "alice", RecordInput{Type: entity.TransactionCredit, Amount: 0})
	assertCode(t, err, errors.CodeValidation)

	_, _, err = env.wallet.Record(ctx, "nobody", RecordInput{Type: entity.TransactionCredit, Amount: 1})
	assertCode(t, err, errors.CodeNotFound)
}

func TestLedgerSumsToBalance(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.users.EnsureUser(ctx, Identity{UID: "alice"})
	require.NoError(t, err)
	_, _, err = env.wallet.Record(ctx, "alice", RecordInput{Type: entity.TransactionDebit, Amount: 120})
	require.NoError(t, err)
	_, _, err = env.wallet.Record(ctx, "alice", RecordInput{Type: entity.TransactionCredit, Amount: 5})
	require.NoError(t, err)

	txns, err := env.wallet.List(ctx, "alice")
	require.NoError(t, err)

	sum := 0
	for _, txn := range txns {
		sum += txn.Delta()
	}
	assert.Equal(t, env.store.users["alice"].Points, sum)
	assert.Equal(t, 185, sum)
}
