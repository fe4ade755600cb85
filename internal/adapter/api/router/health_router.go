package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler) {
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/ws", healthHandler.CheckWebSocket)
	e.GET("/firebase-health", healthHandler.CheckFirebaseHealth)
}
