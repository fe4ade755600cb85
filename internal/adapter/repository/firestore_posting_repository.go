package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestorePostingRepository struct {
	client *firestore.Client
}

func NewFirestorePostingRepository(client *firestore.Client) repository.PostingRepository {
	return &firestorePostingRepository{
		client: client,
	}
}

func (r *firestorePostingRepository) Create(ctx context.Context, posting *entity.Posting) error {
	if posting.ID == "" {
		posting.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now

	if _, err := r.client.Collection(postingsCollection).Doc(posting.ID).Set(ctx, posting); err != nil {
		return errors.Internal("Failed to create request", err)
	}
	return nil
}

func (r *firestorePostingRepository) GetByID(ctx context.Context, id string) (*entity.Posting, error) {
	var posting entity.Posting
	if err := getDoc(ctx, r.client.Collection(postingsCollection).Doc(id), "Request", &posting); err != nil {
		return nil, err
	}
	return &posting, nil
}

func (r *firestorePostingRepository) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Posting, error) {
	query := applyListingFilter(r.client.Collection(postingsCollection).Query, filter)

	postings, err := collect[entity.Posting](query.Documents(ctx), "requests")
	if err != nil || filter.Search == "" {
		return postings, err
	}

	out := make([]*entity.Posting, 0, len(postings))
	for _, p := range postings {
		if matchesSearch(filter.Search, p.Title, p.Description) {
			out = append(out, p)
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
	}
	return out, nil
}

func (r *firestorePostingRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Posting, error) {
	query := r.client.Collection(postingsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Posting](query.Documents(ctx), "requests")
}

func (r *firestorePostingRepository) Update(ctx context.Context, posting *entity.Posting) error {
	posting.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(postingsCollection).Doc(posting.ID).Set(ctx, posting); err != nil {
		return errors.Internal("Failed to update request", err)
	}
	return nil
}
