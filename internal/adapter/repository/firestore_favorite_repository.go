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

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

// Find returns nil without an error when the user has no such favorite.
func (r *firestoreFavoriteRepository) Find(ctx context.Context, userID, itemID, requestID string) (*entity.Favorite, error) {
	query := r.client.Collection(favoritesCollection).
		Where("userId", "==", userID).
		Where("itemId", "==", itemID).
		Where("requestId", "==", requestID).
		Limit(1)

	favs, err := collect[entity.Favorite](query.Documents(ctx), "favorites")
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return nil, nil
	}
	return favs[0], nil
}

func (r *firestoreFavoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	fav.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(favoritesCollection).Doc(fav.ID).Create(ctx, fav); err != nil {
		return errors.Internal("Failed to add favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(favoritesCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	query := r.client.Collection(favoritesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Favorite](query.Documents(ctx), "favorites")
}
