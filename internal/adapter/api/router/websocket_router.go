package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
	"shareheart/internal/adapter/api/middleware"
)

// SetupWebSocketRouter mounts the real-time endpoint. Browsers cannot set
// headers on the upgrade request, so the token may also come as ?token=.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/ws", wsHandler.HandleWebSocket, authMiddleware.AuthenticateWebSocket)
}
