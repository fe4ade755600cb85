package usecase

import (
	"context"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	itemRepo     repository.ItemRepository
	postingRepo  repository.PostingRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	itemRepo repository.ItemRepository,
	postingRepo repository.PostingRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		itemRepo:     itemRepo,
		postingRepo:  postingRepo,
	}
}

func exactlyOneTarget(itemID, requestID string) error {
	if (itemID == "") == (requestID == "") {
		return errors.Validation("Exactly one of itemId or requestId is required", "itemId", "requestId")
	}
	return nil
}

// Add is idempotent: an existing favorite is returned with created=false.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, itemID, requestID string) (*entity.Favorite, bool, error) {
	if err := exactlyOneTarget(itemID, requestID); err != nil {
		return nil, false, err
	}

	existing, err := uc.favoriteRepo.Find(ctx, userID, itemID, requestID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if itemID != "" {
		_, err = uc.itemRepo.GetByID(ctx, itemID)
	} else {
		_, err = uc.postingRepo.GetByID(ctx, requestID)
	}
	if err != nil {
		return nil, false, err
	}

	fav := &entity.Favorite{
		UserID:    userID,
		ItemID:    itemID,
		RequestID: requestID,
	}
	if err := uc.favoriteRepo.Create(ctx, fav); err != nil {
		return nil, false, err
	}
	return fav, true, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, itemID, requestID string) error {
	if err := exactlyOneTarget(itemID, requestID); err != nil {
		return err
	}

	existing, err := uc.favoriteRepo.Find(ctx, userID, itemID, requestID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NotFound("Favorite", nil)
	}
	return uc.favoriteRepo.Delete(ctx, existing.ID)
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	favs, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []*entity.Favorite{}
	}
	return favs, nil
}
