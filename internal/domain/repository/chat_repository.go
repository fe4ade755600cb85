package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type ChatRepository interface {
	GetConversation(ctx context.Context, id string) (*entity.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// AppendMessage stores message and advances the conversation's updatedAt
	// in one transaction. CreatedAt is assigned here and never precedes the
	// conversation's previous updatedAt.
	AppendMessage(ctx context.Context, message *entity.Message) (*entity.Conversation, error)
	GetMessage(ctx context.Context, conversationID, messageID string) (*entity.Message, error)
	// ListMessages returns non-deleted messages, oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	MarkMessageDeleted(ctx context.Context, conversationID, messageID string) error
}
