package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

// SetupChatRouter mounts the HTTP side of chat. Live delivery goes over /ws.
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, m Middlewares) {
	protected := m.protected()

	conversations := e.Group("/v1/conversations", protected...)
	conversations.GET("", chatHandler.ListConversations)
	conversations.GET("/:id", chatHandler.GetConversation)
	conversations.GET("/:id/messages", chatHandler.GetMessages)
	conversations.DELETE("/:id/messages/:messageId", chatHandler.DeleteMessage)

	e.POST("/v1/messages", chatHandler.SendMessage, protected...)
}
