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

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.IsRead = false
	n.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(notificationsCollection).Doc(n.ID).Create(ctx, n); err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	if err := getDoc(ctx, r.client.Collection(notificationsCollection).Doc(id), "Notification", &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	base := r.client.Collection(notificationsCollection).Where("userId", "==", userID)

	total, err := count(ctx, base, "notifications")
	if err != nil {
		return nil, 0, err
	}

	query := base.OrderBy("createdAt", firestore.Desc).Offset(offset).Limit(limit)
	notifications, err := collect[entity.Notification](query.Documents(ctx), "notifications")
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *firestoreNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	query := r.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		Where("isRead", "==", false)

	return count(ctx, query, "notifications")
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(notificationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to mark notification as read", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	iter := r.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx)

	docs, err := iter.GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to get unread notifications", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, doc := range docs {
		job, err := bw.Update(doc.Ref, []firestore.Update{{Path: "isRead", Value: true}})
		if err != nil {
			bw.End()
			return 0, errors.Internal("Failed to mark notifications as read", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	updated := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return updated, errors.Internal("Failed to mark notifications as read", err)
		}
		updated++
	}
	return updated, nil
}
