package usecase

import (
	"context"
	"strings"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

var priceUnits = map[string]bool{"day": true, "week": true, "month": true}

type ItemUseCase struct {
	itemRepo repository.ItemRepository
	notifier Notifier
}

func NewItemUseCase(itemRepo repository.ItemRepository, notifier Notifier) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		notifier: notifier,
	}
}

type ItemInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Condition   string
	Price       float64
	PriceUnit   string
	Location    string
	Pincode     string
	Images      []string
}

// validateListing enforces the rent/donate pricing rule.
func validateListing(listingType string, price float64, priceUnit string) error {
	switch listingType {
	case entity.ListingTypeRent:
		if price <= 0 {
			return errors.Validation("Price is required for rent listings", "price")
		}
		if !priceUnits[priceUnit] {
			return errors.Validation("Price unit must be day, week or month", "priceUnit")
		}
	case entity.ListingTypeDonate:
		if price != 0 || priceUnit != "" {
			return errors.Validation("Donations cannot carry a price", "price", "priceUnit")
		}
	default:
		return errors.Validation("Type must be donate or rent", "type")
	}
	return nil
}

func (uc *ItemUseCase) Create(ctx context.Context, ownerID string, input ItemInput) (*entity.Item, error) {
	if err := validateListing(input.Type, input.Price, input.PriceUnit); err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	item := &entity.Item{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Type:        input.Type,
		Condition:   input.Condition,
		Price:       input.Price,
		PriceUnit:   input.PriceUnit,
		Location:    input.Location,
		Pincode:     input.Pincode,
		Images:      images,
		Status:      entity.ItemStatusAvailable,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		logger.Error("CreateItem Error: %v", err)
		return nil, err
	}

	notifyQuietly(ctx, uc.notifier, "CreateItem", ownerID, entity.NotificationSystem,
		"Item listed", "Your item \""+item.Title+"\" is now live",
		map[string]interface{}{"itemId": item.ID})

	return item, nil
}

// NormalizeFilter applies the default and maximum list limits.
func NormalizeFilter(filter entity.ItemFilter) entity.ItemFilter {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return filter
}

func (uc *ItemUseCase) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	return uc.itemRepo.List(ctx, NormalizeFilter(filter))
}

func (uc *ItemUseCase) ListMine(ctx context.Context, ownerID string) ([]*entity.Item, error) {
	return uc.itemRepo.ListByOwner(ctx, ownerID)
}

// Get returns the item and counts the view. A failed view count is not an error.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("GetItem Warning: failed to count view for %s: %v", id, err)
	} else {
		item.ViewCount++
	}
	return item, nil
}

type UpdateItemInput struct {
	Title       *string
	Description *string
	Category    *string
	Type        *string
	Condition   *string
	Price       *float64
	PriceUnit   *string
	Location    *string
	Pincode     *string
	Images      []string
	Status      *string
}

func (uc *ItemUseCase) ownedItem(ctx context.Context, ownerID, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != ownerID {
		return nil, errors.Forbidden("You can only modify your own items", nil)
	}
	return item, nil
}

func (uc *ItemUseCase) Update(ctx context.Context, ownerID, id string, input UpdateItemInput) (*entity.Item, error) {
	item, err := uc.ownedItem(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Type != nil {
		item.Type = *input.Type
	}
	if input.Condition != nil {
		item.Condition = *input.Condition
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.PriceUnit != nil {
		item.PriceUnit = *input.PriceUnit
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Pincode != nil {
		item.Pincode = *input.Pincode
	}
	if input.Images != nil {
		item.Images = input.Images
	}
	if input.Status != nil {
		if !entity.IsValidItemStatus(*input.Status) {
			return nil, errors.Validation("Status must be available, reserved or taken", "status")
		}
		item.Status = *input.Status
	}

	if err := validateListing(item.Type, item.Price, item.PriceUnit); err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		logger.Error("UpdateItem Error: %v", err)
		return nil, err
	}
	return item, nil
}

func (uc *ItemUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uc.ownedItem(ctx, ownerID, id); err != nil {
		return err
	}
	return uc.itemRepo.Delete(ctx, id)
}
