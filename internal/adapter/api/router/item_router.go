package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupItemRouter(e *echo.Echo, itemHandler *handler.ItemHandler, m Middlewares) {
	items := e.Group("/v1/items")

	// Public browsing
	items.GET("", itemHandler.ListItems)
	items.GET("/:id", itemHandler.GetItem)

	// Owner routes
	protected := m.protected()
	items.GET("/mine", itemHandler.ListMyItems, protected...)
	items.POST("", itemHandler.CreateItem, protected...)
	items.PUT("/:id", itemHandler.UpdateItem, protected...)
	items.DELETE("/:id", itemHandler.DeleteItem, protected...)
}
