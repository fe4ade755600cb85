package usecase

import (
	"context"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
)

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{
		bannerRepo: bannerRepo,
	}
}

type BannerInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	LinkURL     *string
	Target      *int
	Collected   *int
	IsActive    *bool
}

func (in BannerInput) apply(b *entity.Banner) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.ImageURL != nil {
		b.ImageURL = *in.ImageURL
	}
	if in.LinkURL != nil {
		b.LinkURL = *in.LinkURL
	}
	if in.Target != nil {
		b.Target = *in.Target
	}
	if in.Collected != nil {
		b.Collected = *in.Collected
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
}

func (uc *BannerUseCase) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	return uc.bannerRepo.List(ctx, true)
}

func (uc *BannerUseCase) ListAll(ctx context.Context) ([]*entity.Banner, error) {
	return uc.bannerRepo.List(ctx, false)
}

func (uc *BannerUseCase) Create(ctx context.Context, input BannerInput) (*entity.Banner, error) {
	banner := &entity.Banner{IsActive: true}
	input.apply(banner)

	if err := uc.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (uc *BannerUseCase) Update(ctx context.Context, id string, input BannerInput) (*entity.Banner, error) {
	banner, err := uc.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(banner)

	if err := uc.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}
