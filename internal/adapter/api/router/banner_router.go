package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupBannerRouter(e *echo.Echo, bannerHandler *handler.BannerHandler) {
	e.GET("/v1/banners", bannerHandler.ListActiveBanners)
}
