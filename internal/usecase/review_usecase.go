package usecase

import (
	"context"
	"strings"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
	}
}

type CreateReviewInput struct {
	ItemID     string
	RevieweeID string
	Rating     int
	Comment    string
	Type       string
}

func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", "rating")
	}
	if input.RevieweeID == reviewerID {
		return nil, errors.BadRequest("You cannot review yourself", nil)
	}

	switch input.Type {
	case entity.ReviewTypeItem:
		if input.ItemID == "" {
			return nil, errors.Validation("Item ID is required for item reviews", "itemId")
		}
		item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if item.UserID != input.RevieweeID {
			return nil, errors.BadRequest("Reviewee does not own this item", nil)
		}
	case entity.ReviewTypeUser:
		if _, err := uc.userRepo.GetByID(ctx, input.RevieweeID); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Validation("Type must be item or user", "type")
	}

	review := &entity.Review{
		ItemID:     input.ItemID,
		ReviewerID: reviewerID,
		RevieweeID: input.RevieweeID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		Type:       input.Type,
	}
	if input.Type == entity.ReviewTypeUser {
		review.ItemID = ""
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("CreateReview Error: %v", err)
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListByItem(ctx context.Context, itemID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByItem(ctx, itemID)
}

func (uc *ReviewUseCase) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByReviewee(ctx, userID)
}
