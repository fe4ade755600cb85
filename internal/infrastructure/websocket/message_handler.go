package websocket

import (
	"context"

	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

// HandleClientMessage answers pings itself and hands every other frame to the
// registered FrameHandler. Failures go back to the sender as error frames.
func (m *Manager) HandleClientMessage(ctx context.Context, client *Client, data []byte) {
	frame, err := ParseFrame(data)
	if err != nil {
		logger.Debug("WebSocket: invalid frame from %s: %v", client.UserID, err)
		m.SendToClient(client, ErrorFrame(errors.CodeBadRequest, "Invalid message format"))
		return
	}

	if frame.Type == FramePing {
		m.SendToClient(client, &Frame{Type: FramePong})
		return
	}

	m.mutex.RLock()
	handler := m.handler
	m.mutex.RUnlock()

	if handler == nil {
		m.SendToClient(client, ErrorFrame(errors.CodeBadRequest, "Unsupported frame type: "+frame.Type))
		return
	}

	if err := handler.HandleFrame(ctx, client, frame); err != nil {
		appErr := errors.As(err)
		if appErr.Status >= 500 {
			logger.Error("WebSocket %s from %s failed: %v", frame.Type, client.UserID, err)
		}
		reply := ErrorFrame(appErr.Code, appErr.Message)
		reply.ConversationID = frame.ConversationID
		m.SendToClient(client, reply)
	}
}
