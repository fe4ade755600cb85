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

type firestoreBannerRepository struct {
	client *firestore.Client
}

func NewFirestoreBannerRepository(client *firestore.Client) repository.BannerRepository {
	return &firestoreBannerRepository{
		client: client,
	}
}

func (r *firestoreBannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	if _, err := r.client.Collection(bannersCollection).Doc(banner.ID).Set(ctx, banner); err != nil {
		return errors.Internal("Failed to create banner", err)
	}
	return nil
}

func (r *firestoreBannerRepository) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	var banner entity.Banner
	if err := getDoc(ctx, r.client.Collection(bannersCollection).Doc(id), "Banner", &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *firestoreBannerRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error) {
	query := r.client.Collection(bannersCollection).Query
	if activeOnly {
		query = query.Where("isActive", "==", true)
	}

	return collect[entity.Banner](query.OrderBy("createdAt", firestore.Desc).Documents(ctx), "banners")
}

func (r *firestoreBannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	banner.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(bannersCollection).Doc(banner.ID).Set(ctx, banner); err != nil {
		return errors.Internal("Failed to update banner", err)
	}
	return nil
}
