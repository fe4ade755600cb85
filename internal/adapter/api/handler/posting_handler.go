package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type PostingHandler struct {
	postingUseCase *usecase.PostingUseCase
}

func NewPostingHandler(postingUseCase *usecase.PostingUseCase) *PostingHandler {
	return &PostingHandler{
		postingUseCase: postingUseCase,
	}
}

type createPostingRequest struct {
	Title       string  `json:"title" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=donate rent"`
	Location    string  `json:"location" validate:"required"`
	Pincode     string  `json:"pincode" validate:"required"`
	MaxPrice    float64 `json:"maxPrice" validate:"gte=0"`
}

func (h *PostingHandler) CreatePosting(c echo.Context) error {
	var req createPostingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	posting, err := h.postingUseCase.Create(c.Request().Context(), middleware.UID(c), usecase.PostingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Location:    req.Location,
		Pincode:     req.Pincode,
		MaxPrice:    req.MaxPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, posting)
}

func (h *PostingHandler) ListPostings(c echo.Context) error {
	filter, err := listingFilter(c)
	if err != nil {
		return response.Error(c, err)
	}

	postings, err := h.postingUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, postings)
}

func (h *PostingHandler) ListMyPostings(c echo.Context) error {
	postings, err := h.postingUseCase.ListMine(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, postings)
}

func (h *PostingHandler) GetPosting(c echo.Context) error {
	posting, err := h.postingUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posting)
}

type updatePostingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=fulfilled cancelled"`
}

func (h *PostingHandler) UpdatePostingStatus(c echo.Context) error {
	var req updatePostingStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	posting, err := h.postingUseCase.SetStatus(c.Request().Context(), middleware.UID(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posting)
}
