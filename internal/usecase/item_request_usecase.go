package usecase

import (
	"context"
	"strings"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type ItemRequestUseCase struct {
	itemRequestRepo repository.ItemRequestRepository
	itemRepo        repository.ItemRepository
	notifier        Notifier
}

func NewItemRequestUseCase(
	itemRequestRepo repository.ItemRequestRepository,
	itemRepo repository.ItemRepository,
	notifier Notifier,
) *ItemRequestUseCase {
	return &ItemRequestUseCase{
		itemRequestRepo: itemRequestRepo,
		itemRepo:        itemRepo,
		notifier:        notifier,
	}
}

// Submit records a pending request for itemID and tells the owner about it.
func (uc *ItemRequestUseCase) Submit(ctx context.Context, requesterID, itemID, message string) (*entity.ItemRequest, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID == requesterID {
		return nil, errors.BadRequest("You cannot request your own item", nil)
	}

	req := &entity.ItemRequest{
		ItemID:      item.ID,
		RequesterID: requesterID,
		Message:     strings.TrimSpace(message),
	}
	if err := uc.itemRequestRepo.Create(ctx, req); err != nil {
		if !errors.Is(err, errors.CodeConflict) {
			logger.Error("SubmitItemRequest Error: %v", err)
		}
		return nil, err
	}

	notifyQuietly(ctx, uc.notifier, "SubmitItemRequest", item.UserID, entity.NotificationRequest,
		"New request", "Someone requested your item \""+item.Title+"\"",
		map[string]interface{}{"itemId": item.ID, "requestId": req.ID})

	return req, nil
}

// SetStatus approves or rejects a pending request on behalf of the item owner.
// Approval creates the conversation in the same transaction as the status write.
func (uc *ItemRequestUseCase) SetStatus(ctx context.Context, ownerID, requestID, status string) (*entity.ItemRequest, error) {
	if !entity.IsDecision(status) {
		return nil, errors.Validation("Status must be approved or rejected", "status")
	}

	var conv *entity.Conversation
	if status == entity.ItemRequestApproved {
		conv = &entity.Conversation{}
	}

	req, err := uc.itemRequestRepo.Decide(ctx, requestID, ownerID, status, conv)
	if err != nil {
		if errors.Is(err, errors.CodeInternal) {
			logger.Error("SetItemRequestStatus Error: %v", err)
		}
		return nil, err
	}

	if conv != nil {
		notifyQuietly(ctx, uc.notifier, "SetItemRequestStatus", req.RequesterID, entity.NotificationChat,
			"Request approved", "Your request was approved. You can now chat with the owner.",
			map[string]interface{}{"itemId": req.ItemID, "conversationId": conv.ID})
	}

	return req, nil
}

// ListReceived returns the requests made for any item the owner has listed.
func (uc *ItemRequestUseCase) ListReceived(ctx context.Context, ownerID string) ([]*entity.ItemRequest, error) {
	items, err := uc.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*entity.ItemRequest{}, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	reqs, err := uc.itemRequestRepo.ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []*entity.ItemRequest{}
	}
	return reqs, nil
}

func (uc *ItemRequestUseCase) ListSent(ctx context.Context, requesterID, status string) ([]*entity.ItemRequest, error) {
	if status != "" && !entity.IsValidItemRequestStatus(status) {
		return nil, errors.Validation("Status must be pending, approved or rejected", "status")
	}

	reqs, err := uc.itemRequestRepo.ListByRequester(ctx, requesterID, status)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []*entity.ItemRequest{}
	}
	return reqs, nil
}
