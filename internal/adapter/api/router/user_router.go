package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, m Middlewares) {
	users := e.Group("/v1/users")
	users.PATCH("/me", userHandler.UpdateProfile, m.protected()...)
	users.GET("/:id", userHandler.GetPublicProfile)
}
