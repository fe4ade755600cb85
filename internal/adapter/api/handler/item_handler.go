package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/domain/entity"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type createItemRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=donate rent"`
	Condition   string   `json:"condition"`
	Price       float64  `json:"price" validate:"gte=0"`
	PriceUnit   string   `json:"priceUnit" validate:"omitempty,oneof=day week month"`
	Location    string   `json:"location" validate:"required"`
	Pincode     string   `json:"pincode" validate:"required"`
	Images      []string `json:"images"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.Create(c.Request().Context(), middleware.UID(c), usecase.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Condition:   req.Condition,
		Price:       req.Price,
		PriceUnit:   req.PriceUnit,
		Location:    req.Location,
		Pincode:     req.Pincode,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, item)
}

// listingFilter reads the shared item/request list query parameters.
func listingFilter(c echo.Context) (entity.ItemFilter, error) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return entity.ItemFilter{}, err
	}
	return entity.ItemFilter{
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Pincode:  c.QueryParam("pincode"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
	}, nil
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	filter, err := listingFilter(c)
	if err != nil {
		return response.Error(c, err)
	}

	items, err := h.itemUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *ItemHandler) ListMyItems(c echo.Context) error {
	items, err := h.itemUseCase.ListMine(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

type updateItemRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Category    *string  `json:"category"`
	Type        *string  `json:"type" validate:"omitempty,oneof=donate rent"`
	Condition   *string  `json:"condition"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceUnit   *string  `json:"priceUnit"`
	Location    *string  `json:"location"`
	Pincode     *string  `json:"pincode"`
	Images      []string `json:"images"`
	Status      *string  `json:"status"`
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.Update(c.Request().Context(), middleware.UID(c), c.Param("id"), usecase.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Condition:   req.Condition,
		Price:       req.Price,
		PriceUnit:   req.PriceUnit,
		Location:    req.Location,
		Pincode:     req.Pincode,
		Images:      req.Images,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	if err := h.itemUseCase.Delete(c.Request().Context(), middleware.UID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Item deleted successfully"})
}
