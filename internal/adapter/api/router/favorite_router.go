package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupFavoriteRouter(e *echo.Echo, favoriteHandler *handler.FavoriteHandler, m Middlewares) {
	favorites := e.Group("/v1/favorites", m.protected()...)

	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.DELETE("", favoriteHandler.RemoveFavorite)
}
