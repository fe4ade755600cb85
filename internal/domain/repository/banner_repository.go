package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
}
