package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/internal/infrastructure/ratelimit"
	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/pkg/errors"
	"shareheart/pkg/logger"
)

type ChatUseCase struct {
	chatRepo   repository.ChatRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
	publisher  Publisher
	limiter    RateLimiter
	maxContent int
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher Publisher,
	limiter RateLimiter,
	maxContent int,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:   chatRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		limiter:    limiter,
		maxContent: maxContent,
	}
}

// ConversationSummary is a conversation as shown in an inbox.
type ConversationSummary struct {
	*entity.Conversation
	Item      *entity.Item       `json:"item,omitempty"`
	OtherUser *entity.PublicUser `json:"otherUser,omitempty"`
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	convs, err := uc.chatRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]string, 0, len(convs))
	for _, conv := range convs {
		otherIDs = append(otherIDs, conv.OtherParticipant(userID))
	}
	users, err := uc.userRepo.GetByIDs(ctx, otherIDs)
	if err != nil {
		logger.Warn("ListConversations Warning: failed to load participants: %v", err)
		users = map[string]*entity.User{}
	}

	items := make(map[string]*entity.Item)
	out := make([]*ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		summary := &ConversationSummary{
			Conversation: conv,
			OtherUser:    users[conv.OtherParticipant(userID)].Public(),
		}

		if conv.ItemID != "" {
			item, seen := items[conv.ItemID]
			if !seen {
				item, err = uc.itemRepo.GetByID(ctx, conv.ItemID)
				if err != nil {
					logger.Warn("ListConversations Warning: item %s: %v", conv.ItemID, err)
					item = nil
				}
				items[conv.ItemID] = item
			}
			summary.Item = item
		}
		out = append(out, summary)
	}
	return out, nil
}

// GetConversation returns the conversation if userID takes part in it.
func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, conversationID string) (*entity.Conversation, error) {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}
	return conv, nil
}

type SendMessageInput struct {
	ConversationID string
	// SenderID is optional; when set it must match the caller.
	SenderID string
	Content  string
}

// SendMessage persists the message, then fans it out. Subscribers of the
// conversation get new_message; participants not subscribed get
// conversation_updated on their user connection.
func (uc *ChatUseCase) SendMessage(ctx context.Context, callerID string, input SendMessageInput) (*entity.Message, error) {
	if input.SenderID != "" && input.SenderID != callerID {
		return nil, errors.Forbidden("Sender does not match the authenticated user", nil)
	}
	if input.ConversationID == "" {
		return nil, errors.Validation("Conversation ID is required", "conversationId")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.Validation("Message content is required", "content")
	}
	if uc.maxContent > 0 && utf8.RuneCountInString(content) > uc.maxContent {
		return nil, errors.Validation("Message content is too long", "content")
	}

	if uc.limiter != nil {
		if ok, _ := uc.limiter.Allow(callerID, ratelimit.ActionSendMessage); !ok {
			return nil, errors.TooManyRequests("You are sending messages too quickly")
		}
	}

	if _, err := uc.GetConversation(ctx, callerID, input.ConversationID); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		ConversationID: input.ConversationID,
		SenderID:       callerID,
		Content:        content,
	}
	conv, err := uc.chatRepo.AppendMessage(ctx, msg)
	if err != nil {
		logger.Error("SendMessage Error: %v", err)
		return nil, err
	}

	uc.fanOut(conv, msg)
	return msg, nil
}

func (uc *ChatUseCase) fanOut(conv *entity.Conversation, msg *entity.Message) {
	if uc.publisher == nil {
		return
	}

	reached := uc.publisher.PublishToConversation(conv.ID, &ws.Frame{
		Type:           ws.FrameNewMessage,
		ConversationID: conv.ID,
		Message:        msg,
	})

	updatedAt := conv.UpdatedAt
	for _, userID := range []string{conv.Participant1ID, conv.Participant2ID} {
		if reached[userID] {
			continue
		}
		uc.publisher.SendToUser(userID, &ws.Frame{
			Type:           ws.FrameConversationUpdated,
			ConversationID: conv.ID,
			UpdatedAt:      &updatedAt,
			Message:        msg,
		})
	}
}

// FetchHistory returns the conversation's visible messages, oldest first.
func (uc *ChatUseCase) FetchHistory(ctx context.Context, callerID, conversationID string) ([]*entity.Message, error) {
	if _, err := uc.GetConversation(ctx, callerID, conversationID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListMessages(ctx, conversationID)
}

// DeleteMessage soft-deletes a message. Only its sender may delete it.
func (uc *ChatUseCase) DeleteMessage(ctx context.Context, callerID, conversationID, messageID string) error {
	if _, err := uc.GetConversation(ctx, callerID, conversationID); err != nil {
		return err
	}

	msg, err := uc.chatRepo.GetMessage(ctx, conversationID, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != callerID {
		return errors.Forbidden("You can only delete your own messages", nil)
	}
	if msg.IsDeleted {
		return nil
	}

	if err := uc.chatRepo.MarkMessageDeleted(ctx, conversationID, messageID); err != nil {
		logger.Error("DeleteMessage Error: %v", err)
		return err
	}

	if uc.publisher != nil {
		uc.publisher.PublishToConversation(conversationID, &ws.Frame{
			Type:           ws.FrameMessageDeleted,
			ConversationID: conversationID,
			MessageID:      messageID,
		})
	}
	return nil
}
