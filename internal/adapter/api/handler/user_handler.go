package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetPublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=60"`
	LastName  *string `json:"lastName" validate:"omitempty,max=60"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Location  *string `json:"location" validate:"omitempty,max=120"`
	Pincode   *string `json:"pincode" validate:"omitempty,max=12"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), middleware.UID(c), usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Pincode:   req.Pincode,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
