package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"shareheart/internal/adapter/api/middleware"
	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/internal/usecase"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
	"shareheart/pkg/response"
)

// WebSocketHandler upgrades authenticated connections and serves the frames
// they send.
type WebSocketHandler struct {
	ctx         context.Context
	wsManager   *ws.Manager
	chatUseCase *usecase.ChatUseCase
	upgrader    gorillaws.Upgrader
}

// NewWebSocketHandler registers itself as the manager's frame handler. ctx
// bounds the lifetime of every connection it accepts.
func NewWebSocketHandler(ctx context.Context, wsManager *ws.Manager, chatUseCase *usecase.ChatUseCase, allowedOrigins []string) *WebSocketHandler {
	h := &WebSocketHandler{
		ctx:         ctx,
		wsManager:   wsManager,
		chatUseCase: chatUseCase,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
	wsManager.SetFrameHandler(h)
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Native clients send no Origin header.
		return origin == "" || set[origin]
	}
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID := middleware.UID(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Warn("WebSocket upgrade failed for %s: %v", userID, err)
		return nil
	}

	client := ws.NewClient(h.wsManager, userID, conn)
	if err := h.wsManager.Register(client); err != nil {
		conn.Close()
		return nil
	}

	go client.WritePump()
	go client.ReadPump(h.ctx)

	return nil
}

// HandleFrame serves join, leave and chat frames for a connected client.
func (h *WebSocketHandler) HandleFrame(ctx context.Context, client *ws.Client, frame *ws.Frame) error {
	switch frame.Type {
	case ws.FrameJoinConversation:
		if frame.ConversationID == "" {
			return errors.Validation("conversationId is required", "conversationId")
		}
		if _, err := h.chatUseCase.GetConversation(ctx, client.UserID, frame.ConversationID); err != nil {
			return err
		}
		if !h.wsManager.Subscribe(frame.ConversationID, client) {
			return nil
		}
		h.wsManager.SendToClient(client, &ws.Frame{Type: ws.FrameJoined, ConversationID: frame.ConversationID})
		return nil

	case ws.FrameLeaveConversation:
		h.wsManager.Unsubscribe(frame.ConversationID, client)
		h.wsManager.SendToClient(client, &ws.Frame{Type: ws.FrameLeft, ConversationID: frame.ConversationID})
		return nil

	case ws.FrameChatMessage:
		_, err := h.chatUseCase.SendMessage(ctx, client.UserID, usecase.SendMessageInput{
			ConversationID: frame.ConversationID,
			SenderID:       frame.SenderID,
			Content:        frame.Content,
		})
		return err
	}

	return errors.BadRequest("Unsupported frame type: "+frame.Type, nil)
}
