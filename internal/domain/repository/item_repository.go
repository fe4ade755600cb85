package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PostingRepository interface {
	Create(ctx context.Context, posting *entity.Posting) error
	GetByID(ctx context.Context, id string) (*entity.Posting, error)
	List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Posting, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Posting, error)
	Update(ctx context.Context, posting *entity.Posting) error
}
