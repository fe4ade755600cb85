package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/internal/domain/entity"
	"shareheart/pkg/errors"
)

func TestEnsureUserCreatesWithSignupBonus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.users.EnsureUser(ctx, Identity{UID: "u1", Email: "a@example.com", Name: "Ada Love Lace"})
	require.NoError(t, err)

	assert.Equal(t, 300, user.Points)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Love Lace", user.LastName)

	txns, err := env.wallet.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionCredit, txns[0].Type)
	assert.Equal(t, 300, txns[0].Amount)

	again, err := env.users.EnsureUser(ctx, Identity{UID: "u1", Name: "Someone Else"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)
	assert.Equal(t, 300, again.Points)

	txns, err = env.wallet.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, txns, 1, "bonus is granted once")
}

func TestPublicProfileHidesPrivateFields(t *testing.T) {
	env := newTestEnv()
	u := env.store.addUser("alice", 10)
	u.Email = "alice@example.com"
	u.Phone = "123"

	profile, err := env.users.GetPublicProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.ID)
	assert.Equal(t, "Alice", profile.FirstName)

	_, err = env.users.GetPublicProfile(context.Background(), "nobody")
	assertCode(t, err, errors.CodeNotFound)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice", 0)
	city := " Pune "
	pin := "411001"

	user, err := env.users.UpdateProfile(context.Background(), "alice", UpdateProfileInput{Location: &city, Pincode: &pin})
	require.NoError(t, err)
	assert.Equal(t, "Pune", user.Location)
	assert.Equal(t, "411001", user.Pincode)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, first, last string
	}{
		{"", "", ""},
		{"Ada", "Ada", ""},
		{"  Ada   Lovelace ", "Ada", "Lovelace"},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}
