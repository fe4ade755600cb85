package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	ws "shareheart/internal/infrastructure/websocket"
)

// AuthPinger reports whether the identity provider is reachable.
type AuthPinger interface {
	TestConnection(ctx context.Context) error
}

// SocketStats exposes live broker counters.
type SocketStats interface {
	Stats() ws.Stats
}

type HealthHandler struct {
	auth    AuthPinger
	sockets SocketStats
}

func NewHealthHandler(auth AuthPinger, sockets SocketStats) *HealthHandler {
	return &HealthHandler{
		auth:    auth,
		sockets: sockets,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckFirebaseHealth(c echo.Context) error {
	if err := h.auth.TestConnection(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Firebase Auth connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firebase Auth connected successfully",
	})
}

func (h *HealthHandler) CheckWebSocket(c echo.Context) error {
	stats := h.sockets.Stats()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"connections": stats.Connections,
		"rooms":       stats.Rooms,
	})
}
