package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
)

func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler, m Middlewares) {
	// Admin routes - require authentication and admin role
	admin := e.Group("/v1/admin", m.protected()...)
	admin.Use(m.Admin.AdminOnly)

	admin.GET("/banners", adminHandler.ListBanners)
	admin.POST("/banners", adminHandler.CreateBanner)
	admin.PUT("/banners/:id", adminHandler.UpdateBanner)

	admin.POST("/users/:id/transactions", adminHandler.RecordTransaction)
}
