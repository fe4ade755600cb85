package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/pkg/errors"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	env := newTestEnv()
	env.store.addItem("item-1", "alice")
	ctx := context.Background()

	fav, created, err := env.favorites.Add(ctx, "bob", "item-1", "")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := env.favorites.Add(ctx, "bob", "item-1", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, fav.ID, again.ID)

	favs, err := env.favorites.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	require.NoError(t, env.favorites.Remove(ctx, "bob", "item-1", ""))
	assertCode(t, env.favorites.Remove(ctx, "bob", "item-1", ""), errors.CodeNotFound)
}

func TestFavoriteRequiresExactlyOneTarget(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, _, err := env.favorites.Add(ctx, "bob", "", "")
	assertCode(t, err, errors.CodeValidation)

	_, _, err = env.favorites.Add(ctx, "bob", "item-1", "posting-1")
	assertCode(t, err, errors.CodeValidation)

	_, _, err = env.favorites.Add(ctx, "bob", "", "posting-404")
	assertCode(t, err, errors.CodeNotFound)
}
