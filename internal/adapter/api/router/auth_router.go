package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, m Middlewares) {
	auth := e.Group("/v1/auth", m.protected()...)
	auth.GET("/user", authHandler.GetCurrentUser)
}
