package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type ReviewRepository interface {
	// Create stores the review and folds its rating into the reviewed
	// item's or user's aggregate in one transaction.
	Create(ctx context.Context, review *entity.Review) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.Review, error)
	ListByReviewee(ctx context.Context, userID string) ([]*entity.Review, error)
}
