package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestoreItemRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRequestRepository(client *firestore.Client) repository.ItemRequestRepository {
	return &firestoreItemRequestRepository{
		client: client,
	}
}

func (r *firestoreItemRequestRepository) Create(ctx context.Context, req *entity.ItemRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	req.Status = entity.ItemRequestPending
	req.CreatedAt = now
	req.UpdatedAt = now

	requests := r.client.Collection(itemRequestsCollection)
	pending := requests.
		Where("itemId", "==", req.ItemID).
		Where("requesterId", "==", req.RequesterID).
		Where("status", "==", entity.ItemRequestPending).
		Limit(1)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(pending).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return errors.Conflict("You already have a pending request for this item")
		}
		return tx.Create(requests.Doc(req.ID), req)
	})
	if err != nil {
		return txError("Failed to create item request", err)
	}

	return nil
}

func (r *firestoreItemRequestRepository) GetByID(ctx context.Context, id string) (*entity.ItemRequest, error) {
	var req entity.ItemRequest
	if err := getDoc(ctx, r.client.Collection(itemRequestsCollection).Doc(id), "Item request", &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByItemIDs batches the ids into "in" queries instead of one query per item.
func (r *firestoreItemRequestRepository) ListByItemIDs(ctx context.Context, itemIDs []string) ([]*entity.ItemRequest, error) {
	out := []*entity.ItemRequest{}
	for _, ids := range chunk(itemIDs, maxInValues) {
		iter := r.client.Collection(itemRequestsCollection).Where("itemId", "in", ids).Documents(ctx)
		reqs, err := collect[entity.ItemRequest](iter, "item requests")
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *firestoreItemRequestRepository) ListByRequester(ctx context.Context, requesterID, status string) ([]*entity.ItemRequest, error) {
	query := r.client.Collection(itemRequestsCollection).Where("requesterId", "==", requesterID)
	if status != "" {
		query = query.Where("status", "==", status)
	}

	return collect[entity.ItemRequest](query.OrderBy("createdAt", firestore.Desc).Documents(ctx), "item requests")
}

func (r *firestoreItemRequestRepository) Decide(ctx context.Context, id, ownerID, status string, conversation *entity.Conversation) (*entity.ItemRequest, error) {
	reqRef := r.client.Collection(itemRequestsCollection).Doc(id)

	var updated entity.ItemRequest
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var req entity.ItemRequest
		if err := txGetDoc(tx, reqRef, "Item request", &req); err != nil {
			return err
		}

		var item entity.Item
		if err := txGetDoc(tx, r.client.Collection(itemsCollection).Doc(req.ItemID), "Item", &item); err != nil {
			return err
		}
		if item.UserID != ownerID {
			return errors.Forbidden("Only the item owner can decide on this request", nil)
		}
		if req.Status != entity.ItemRequestPending {
			return errors.Conflict("Item request is already " + req.Status)
		}

		now := time.Now().UTC()
		req.Status = status
		req.UpdatedAt = now

		if err := tx.Update(reqRef, []firestore.Update{
			{Path: "status", Value: status},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		if conversation != nil {
			if conversation.ID == "" {
				conversation.ID = uuid.New().String()
			}
			conversation.ItemID = item.ID
			conversation.ItemRequestID = req.ID
			conversation.Participant1ID = item.UserID
			conversation.Participant2ID = req.RequesterID
			conversation.Participants = []string{item.UserID, req.RequesterID}
			conversation.CreatedAt = now
			conversation.UpdatedAt = now
			if err := tx.Create(r.client.Collection(conversationsCollection).Doc(conversation.ID), conversation); err != nil {
				return err
			}
		}

		updated = req
		return nil
	})
	if err != nil {
		return nil, txError("Failed to update item request status", err)
	}

	return &updated, nil
}
