package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type AdminHandler struct {
	bannerUseCase *usecase.BannerUseCase
	walletUseCase *usecase.WalletUseCase
}

func NewAdminHandler(bannerUseCase *usecase.BannerUseCase, walletUseCase *usecase.WalletUseCase) *AdminHandler {
	return &AdminHandler{
		bannerUseCase: bannerUseCase,
		walletUseCase: walletUseCase,
	}
}

type bannerRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	LinkURL     *string `json:"linkUrl" validate:"omitempty,url"`
	Target      *int    `json:"target" validate:"omitempty,gte=0"`
	Collected   *int    `json:"collected" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (r bannerRequest) input() usecase.BannerInput {
	return usecase.BannerInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		Target:      r.Target,
		Collected:   r.Collected,
		IsActive:    r.IsActive,
	}
}

func (h *AdminHandler) ListBanners(c echo.Context) error {
	banners, err := h.bannerUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banners)
}

func (h *AdminHandler) CreateBanner(c echo.Context) error {
	var req bannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	banner, err := h.bannerUseCase.Create(c.Request().Context(), req.input())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, banner)
}

func (h *AdminHandler) UpdateBanner(c echo.Context) error {
	var req bannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	banner, err := h.bannerUseCase.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banner)
}

type adminTransactionRequest struct {
	Type        string                 `json:"type" validate:"required,oneof=credit debit"`
	Amount      int                    `json:"amount" validate:"required,gt=0"`
	Description string                 `json:"description" validate:"required,max=200"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// RecordTransaction credits or debits any user's points.
func (h *AdminHandler) RecordTransaction(c echo.Context) error {
	var req adminTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	txn, balance, err := h.walletUseCase.Record(c.Request().Context(), c.Param("id"), usecase.RecordInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, transactionResult{Transaction: txn, Balance: balance})
}
