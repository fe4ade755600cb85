package websocket

import (
	"encoding/json"
	"time"
)

// Inbound frame types.
const (
	FrameChatMessage       = "chat_message"
	FrameJoinConversation  = "join_conversation"
	FrameLeaveConversation = "leave_conversation"
	FramePing              = "ping"
)

// Outbound frame types.
const (
	FrameNewMessage          = "new_message"
	FrameMessageDeleted      = "message_deleted"
	FrameConversationUpdated = "conversation_updated"
	FrameNotification        = "notification"
	FrameJoined              = "joined"
	FrameLeft                = "left"
	FramePong                = "pong"
	FrameError               = "error"
)

// Frame is the single envelope used in both directions. Only the fields
// relevant to Type are set.
type Frame struct {
	Type           string      `json:"type"`
	ConversationID string      `json:"conversationId,omitempty"`
	SenderID       string      `json:"senderId,omitempty"`
	Content        string      `json:"content,omitempty"`
	MessageID      string      `json:"messageId,omitempty"`
	Message        interface{} `json:"message,omitempty"`
	Notification   interface{} `json:"notification,omitempty"`
	UpdatedAt      *time.Time  `json:"updatedAt,omitempty"`
	Code           string      `json:"code,omitempty"`
	Error          string      `json:"error,omitempty"`
}

func ParseFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func ErrorFrame(code, message string) *Frame {
	return &Frame{Type: FrameError, Code: code, Error: message}
}
