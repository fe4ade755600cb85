package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var (
			ref    *firestore.DocumentRef
			rating float64
			total  int
		)

		if review.Type == entity.ReviewTypeItem {
			ref = r.client.Collection(itemsCollection).Doc(review.ItemID)
			var item entity.Item
			if err := txGetDoc(tx, ref, "Item", &item); err != nil {
				return err
			}
			rating, total = item.Rating, item.TotalReviews
		} else {
			ref = r.client.Collection(usersCollection).Doc(review.RevieweeID)
			var user entity.User
			if err := txGetDoc(tx, ref, "User", &user); err != nil {
				return err
			}
			rating, total = user.Rating, user.TotalReviews
		}

		rating, total = entity.ApplyRating(rating, total, review.Rating)
		review.CreatedAt = time.Now().UTC()

		if err := tx.Update(ref, []firestore.Update{
			{Path: "rating", Value: rating},
			{Path: "totalReviews", Value: total},
		}); err != nil {
			return err
		}
		return tx.Create(r.client.Collection(reviewsCollection).Doc(review.ID), review)
	})
	if err != nil {
		return txError("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) ListByItem(ctx context.Context, itemID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).
		Where("itemId", "==", itemID).
		Where("type", "==", entity.ReviewTypeItem).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Review](query.Documents(ctx), "reviews")
}

func (r *firestoreReviewRepository) ListByReviewee(ctx context.Context, userID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).
		Where("revieweeId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Review](query.Documents(ctx), "reviews")
}
