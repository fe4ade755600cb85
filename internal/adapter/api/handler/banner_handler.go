package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{
		bannerUseCase: bannerUseCase,
	}
}

func (h *BannerHandler) ListActiveBanners(c echo.Context) error {
	banners, err := h.bannerUseCase.ListActive(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banners)
}
