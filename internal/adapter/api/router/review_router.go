package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler, m Middlewares) {
	reviews := e.Group("/v1/reviews")

	reviews.GET("/item/:itemId", reviewHandler.ListItemReviews)
	reviews.GET("/user/:userId", reviewHandler.ListUserReviews)
	reviews.POST("", reviewHandler.CreateReview, m.protected()...)
}
