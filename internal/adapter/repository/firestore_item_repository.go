package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.client.Collection(itemsCollection).Doc(item.ID).Set(ctx, item); err != nil {
		return errors.Internal("Failed to create item", err)
	}
	return nil
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var item entity.Item
	if err := getDoc(ctx, r.client.Collection(itemsCollection).Doc(id), "Item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List applies the equality filters in Firestore. Search is a substring match
// which Firestore cannot express, so it runs over the fetched documents.
func (r *firestoreItemRepository) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	query := applyListingFilter(r.client.Collection(itemsCollection).Query, filter)

	items, err := collect[entity.Item](query.Documents(ctx), "items")
	if err != nil {
		return nil, err
	}

	if filter.Search == "" {
		return items, nil
	}

	out := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if matchesSearch(filter.Search, item.Title, item.Description) {
			out = append(out, item)
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
	}
	return out, nil
}

func (r *firestoreItemRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Item, error) {
	query := r.client.Collection(itemsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Item](query.Documents(ctx), "items")
}

func (r *firestoreItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(itemsCollection).Doc(item.ID).Set(ctx, item); err != nil {
		return errors.Internal("Failed to update item", err)
	}
	return nil
}

func (r *firestoreItemRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection(itemsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Item", err)
		}
		return errors.Internal("Failed to increment item views", err)
	}
	return nil
}

func (r *firestoreItemRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(itemsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete item", err)
	}
	return nil
}

// applyListingFilter is shared by items and postings, which filter identically.
func applyListingFilter(query firestore.Query, filter entity.ItemFilter) firestore.Query {
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type)
	}
	if filter.Pincode != "" {
		query = query.Where("pincode", "==", filter.Pincode)
	}

	query = query.OrderBy("createdAt", firestore.Desc)
	if filter.Limit > 0 && filter.Search == "" {
		query = query.Limit(filter.Limit)
	}
	return query
}

func matchesSearch(search string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
