package usecase

import (
	"context"
	"strings"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type PostingUseCase struct {
	postingRepo repository.PostingRepository
}

func NewPostingUseCase(postingRepo repository.PostingRepository) *PostingUseCase {
	return &PostingUseCase{
		postingRepo: postingRepo,
	}
}

type PostingInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Location    string
	Pincode     string
	MaxPrice    float64
}

func (uc *PostingUseCase) Create(ctx context.Context, ownerID string, input PostingInput) (*entity.Posting, error) {
	if input.Type != entity.ListingTypeDonate && input.Type != entity.ListingTypeRent {
		return nil, errors.Validation("Type must be donate or rent", "type")
	}
	if input.MaxPrice < 0 {
		return nil, errors.Validation("Max price cannot be negative", "maxPrice")
	}

	posting := &entity.Posting{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Type:        input.Type,
		Location:    input.Location,
		Pincode:     input.Pincode,
		MaxPrice:    input.MaxPrice,
		Status:      entity.PostingStatusActive,
	}

	if err := uc.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

func (uc *PostingUseCase) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Posting, error) {
	return uc.postingRepo.List(ctx, NormalizeFilter(filter))
}

func (uc *PostingUseCase) ListMine(ctx context.Context, ownerID string) ([]*entity.Posting, error) {
	return uc.postingRepo.ListByOwner(ctx, ownerID)
}

func (uc *PostingUseCase) Get(ctx context.Context, id string) (*entity.Posting, error) {
	return uc.postingRepo.GetByID(ctx, id)
}

// SetStatus moves an active posting to fulfilled or cancelled. Both are final.
func (uc *PostingUseCase) SetStatus(ctx context.Context, ownerID, id, status string) (*entity.Posting, error) {
	if status != entity.PostingStatusFulfilled && status != entity.PostingStatusCancelled {
		return nil, errors.Validation("Status must be fulfilled or cancelled", "status")
	}

	posting, err := uc.postingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.UserID != ownerID {
		return nil, errors.Forbidden("You can only update your own requests", nil)
	}
	if posting.IsTerminal() {
		return nil, errors.Conflict("Request is already " + posting.Status)
	}

	posting.Status = status
	if err := uc.postingRepo.Update(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}
