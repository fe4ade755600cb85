package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type ItemRequestHandler struct {
	itemRequestUseCase *usecase.ItemRequestUseCase
}

func NewItemRequestHandler(itemRequestUseCase *usecase.ItemRequestUseCase) *ItemRequestHandler {
	return &ItemRequestHandler{
		itemRequestUseCase: itemRequestUseCase,
	}
}

type submitItemRequestRequest struct {
	ItemID  string `json:"itemId" validate:"required"`
	Message string `json:"message" validate:"max=1000"`
}

func (h *ItemRequestHandler) SubmitItemRequest(c echo.Context) error {
	var req submitItemRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	itemRequest, err := h.itemRequestUseCase.Submit(c.Request().Context(), middleware.UID(c), req.ItemID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, itemRequest)
}

func (h *ItemRequestHandler) ListReceived(c echo.Context) error {
	reqs, err := h.itemRequestUseCase.ListReceived(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reqs)
}

func (h *ItemRequestHandler) ListSent(c echo.Context) error {
	reqs, err := h.itemRequestUseCase.ListSent(c.Request().Context(), middleware.UID(c), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reqs)
}

type updateItemRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *ItemRequestHandler) UpdateStatus(c echo.Context) error {
	var req updateItemRequestStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	itemRequest, err := h.itemRequestUseCase.SetStatus(c.Request().Context(), middleware.UID(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, itemRequest)
}
