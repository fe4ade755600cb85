package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type ItemRequestRepository interface {
	// Create persists a pending request. It fails with a conflict when the
	// requester already has a pending request for the same item.
	Create(ctx context.Context, req *entity.ItemRequest) error
	GetByID(ctx context.Context, id string) (*entity.ItemRequest, error)
	ListByItemIDs(ctx context.Context, itemIDs []string) ([]*entity.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID, status string) ([]*entity.ItemRequest, error)

	// Decide moves a pending request to status on behalf of ownerID. When
	// conversation is non-nil its participants are filled from the item owner
	// and the requester and it is created in the same transaction. A request
	// that is no longer pending yields a conflict and nothing is written.
	Decide(ctx context.Context, id, ownerID, status string, conversation *entity.Conversation) (*entity.ItemRequest, error)
}
