package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type FavoriteRepository interface {
	Find(ctx context.Context, userID, itemID, requestID string) (*entity.Favorite, error)
	Create(ctx context.Context, favorite *entity.Favorite) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
