package router

import (
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/handler"
	"shareheart/internal/adapter/api/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Item         *handler.ItemHandler
	Posting      *handler.PostingHandler
	ItemRequest  *handler.ItemRequestHandler
	Chat         *handler.ChatHandler
	Notification *handler.NotificationHandler
	Transaction  *handler.TransactionHandler
	Favorite     *handler.FavoriteHandler
	Review       *handler.ReviewHandler
	Banner       *handler.BannerHandler
	Admin        *handler.AdminHandler
	Health       *handler.HealthHandler
	WebSocket    *handler.WebSocketHandler
}

// Middlewares are the guards applied to protected routes. RateLimit runs
// after authentication so callers are limited by uid.
type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Admin     *middleware.AdminMiddleware
	RateLimit echo.MiddlewareFunc
}

func (m Middlewares) protected() []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{m.Auth.Authenticate}
	if m.RateLimit != nil {
		chain = append(chain, m.RateLimit)
	}
	return chain
}

func Setup(e *echo.Echo, h Handlers, m Middlewares) {
	SetupHealthRouter(e, h.Health)
	SetupWebSocketRouter(e, h.WebSocket, m.Auth)
	SetupAuthRouter(e, h.Auth, m)
	SetupUserRouter(e, h.User, m)
	SetupItemRouter(e, h.Item, m)
	SetupPostingRouter(e, h.Posting, m)
	SetupItemRequestRouter(e, h.ItemRequest, m)
	SetupChatRouter(e, h.Chat, m)
	SetupNotificationRouter(e, h.Notification, m)
	SetupTransactionRouter(e, h.Transaction, m)
	SetupFavoriteRouter(e, h.Favorite, m)
	SetupReviewRouter(e, h.Review, m)
	SetupBannerRouter(e, h.Banner)
	SetupAdminRouter(e, h.Admin, m)
}
