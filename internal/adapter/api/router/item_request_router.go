package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupItemRequestRouter(e *echo.Echo, itemRequestHandler *handler.ItemRequestHandler, m Middlewares) {
	itemRequests := e.Group("/v1/item-requests", m.protected()...)

	itemRequests.POST("", itemRequestHandler.SubmitItemRequest)
	itemRequests.GET("/received", itemRequestHandler.ListReceived)
	itemRequests.GET("/sent", itemRequestHandler.ListSent)
	itemRequests.PATCH("/:id/status", itemRequestHandler.UpdateStatus)
}
