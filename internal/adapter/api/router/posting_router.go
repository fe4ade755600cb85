package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupPostingRouter(e *echo.Echo, postingHandler *handler.PostingHandler, m Middlewares) {
	requests := e.Group("/v1/requests")

	requests.GET("", postingHandler.ListPostings)
	requests.GET("/:id", postingHandler.GetPosting)

	protected := m.protected()
	requests.GET("/mine", postingHandler.ListMyPostings, protected...)
	requests.POST("", postingHandler.CreatePosting, protected...)
	requests.PATCH("/:id/status", postingHandler.UpdatePostingStatus, protected...)
}
