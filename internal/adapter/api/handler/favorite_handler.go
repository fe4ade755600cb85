package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type favoriteRequest struct {
	ItemID    string `json:"itemId" query:"itemId"`
	RequestID string `json:"requestId" query:"requestId"`
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	favorite, created, err := h.favoriteUseCase.Add(c.Request().Context(), middleware.UID(c), req.ItemID, req.RequestID)
	if err != nil {
		return response.Error(c, err)
	}
	if created {
		return response.Created(c, favorite)
	}
	return response.Success(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if err := h.favoriteUseCase.Remove(c.Request().Context(), middleware.UID(c), req.ItemID, req.RequestID); err != nil {
		return response.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUseCase.List(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favorites)
}
