package handler

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	"shareheart/internal/usecase"
	"shareheart/pkg/response"
)

type AuthHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewAuthHandler(userUseCase *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
	}
}

// GetCurrentUser returns the caller's profile, creating it on first sign-in.
func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	identity := usecase.Identity{UID: middleware.UID(c)}
	if token := middleware.Token(c); token != nil {
		identity.Email, _ = token.Claims["email"].(string)
		identity.Name, _ = token.Claims["name"].(string)
		identity.Picture, _ = token.Claims["picture"].(string)
	}

	user, err := h.userUseCase.EnsureUser(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
