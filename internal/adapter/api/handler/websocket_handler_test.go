package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/pkg/errors"
)

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://shareheart.app"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req), "requests without Origin are native clients")

	req.Header.Set("Origin", "https://shareheart.app")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	wildcard := originChecker([]string{"*"})
	assert.True(t, wildcard(req))
}

func TestHandleFrameRejectsUnknownType(t *testing.T) {
	h := &WebSocketHandler{wsManager: ws.NewManager(1)}

	err := h.HandleFrame(context.Background(), &ws.Client{UserID: "alice"}, &ws.Frame{Type: "typing"})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestHandleFrameJoinRequiresConversation(t *testing.T) {
	h := &WebSocketHandler{wsManager: ws.NewManager(1)}

	err := h.HandleFrame(context.Background(), &ws.Client{UserID: "alice"}, &ws.Frame{Type: ws.FrameJoinConversation})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestHandleWebSocketRequiresUser(t *testing.T) {
	h := &WebSocketHandler{wsManager: ws.NewManager(1)}
	c, rec := newContext(newEcho(), http.MethodGet, "/ws", "", "")

	assert.NoError(t, h.HandleWebSocket(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
