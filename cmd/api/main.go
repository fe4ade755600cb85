package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shareheart/internal/adapter/api"
	"shareheart/internal/adapter/api/handler"
	apimiddleware "shareheart/internal/adapter/api/middleware"
	"shareheart/internal/adapter/api/router"
	"shareheart/internal/adapter/repository"
	"shareheart/internal/infrastructure/firebase"
	"shareheart/internal/infrastructure/ratelimit"
	"shareheart/internal/infrastructure/websocket"
	"shareheart/internal/usecase"
	"shareheart/pkg/config"
	"shareheart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := firebase.Credentials(cfg.FirebaseServiceAccountJSON, cfg.FirebaseServiceAccountPath)
	if len(opts) == 0 {
		logger.Warn("No service account configured, using application default credentials")
	}

	firebaseApp, err := firebase.NewApp(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Repositories
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	postingRepo := repository.NewFirestorePostingRepository(firestoreClient)
	itemRequestRepo := repository.NewFirestoreItemRequestRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	bannerRepo := repository.NewFirestoreBannerRepository(firestoreClient)

	// Real-time broker and limiter
	wsManager := websocket.NewManager(cfg.WSSendBuffer)
	wsManager.Start(ctx)

	policies := ratelimit.DefaultPolicies()
	policies[ratelimit.ActionAPI] = ratelimit.PerMinute(cfg.RateLimitPerMinute)
	rateLimiter := ratelimit.NewRateLimiter(policies)
	rateLimiter.StartCleanupRoutine(ctx, 5*time.Minute)

	// Use cases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	userUseCase := usecase.NewUserUseCase(userRepo, cfg.SignupBonusPoints)
	itemUseCase := usecase.NewItemUseCase(itemRepo, notificationUseCase)
	postingUseCase := usecase.NewPostingUseCase(postingRepo)
	itemRequestUseCase := usecase.NewItemRequestUseCase(itemRequestRepo, itemRepo, notificationUseCase)
	chatUseCase := usecase.NewChatUseCase(chatRepo, itemRepo, userRepo, wsManager, rateLimiter, cfg.MessageMaxLength)
	walletUseCase := usecase.NewWalletUseCase(transactionRepo, notificationUseCase)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, itemRepo, postingRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, itemRepo, userRepo)
	bannerUseCase := usecase.NewBannerUseCase(bannerRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(userUseCase),
		User:         handler.NewUserHandler(userUseCase),
		Item:         handler.NewItemHandler(itemUseCase),
		Posting:      handler.NewPostingHandler(postingUseCase),
		ItemRequest:  handler.NewItemRequestHandler(itemRequestUseCase),
		Chat:         handler.NewChatHandler(chatUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		Transaction:  handler.NewTransactionHandler(walletUseCase),
		Favorite:     handler.NewFavoriteHandler(favoriteUseCase),
		Review:       handler.NewReviewHandler(reviewUseCase),
		Banner:       handler.NewBannerHandler(bannerUseCase),
		Admin:        handler.NewAdminHandler(bannerUseCase, walletUseCase),
		Health:       handler.NewHealthHandler(firebaseAuthClient, wsManager),
		WebSocket:    handler.NewWebSocketHandler(ctx, wsManager, chatUseCase, cfg.AllowedOrigins),
	}

	router.Setup(e, handlers, router.Middlewares{
		Auth:      apimiddleware.NewAuthMiddleware(firebaseAuthClient),
		Admin:     apimiddleware.NewAdminMiddleware(userRepo),
		RateLimit: apimiddleware.RateLimit(rateLimiter),
	})

	go func() {
		logger.Info("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
