package repository

import (
	"context"
	"crypto/rand"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/oklog/ulid/v2"

	"shareheart/internal/domain/entity"
	"shareheart/internal/domain/repository"
	"shareheart/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) conversation(id string) *firestore.DocumentRef {
	return r.client.Collection(conversationsCollection).Doc(id)
}

func (r *firestoreChatRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.conversation(conversationID).Collection(messagesCollection)
}

func (r *firestoreChatRepository) GetConversation(ctx context.Context, id string) (*entity.Conversation, error) {
	var conv entity.Conversation
	if err := getDoc(ctx, r.conversation(id), "Conversation", &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *firestoreChatRepository) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	query := r.client.Collection(conversationsCollection).
		Where("participants", "array-contains", userID).
		OrderBy("updatedAt", firestore.Desc)

	return collect[entity.Conversation](query.Documents(ctx), "conversations")
}

func (r *firestoreChatRepository) AppendMessage(ctx context.Context, message *entity.Message) (*entity.Conversation, error) {
	convRef := r.conversation(message.ConversationID)

	var conv entity.Conversation
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := txGetDoc(tx, convRef, "Conversation", &conv); err != nil {
			return err
		}

		// The conversation document serializes concurrent sends, so clamping
		// to its last updatedAt keeps createdAt non-decreasing per conversation.
		createdAt := time.Now().UTC()
		if createdAt.Before(conv.UpdatedAt) {
			createdAt = conv.UpdatedAt
		}

		message.ID = ulid.MustNew(ulid.Timestamp(createdAt), rand.Reader).String()
		message.IsDeleted = false
		message.CreatedAt = createdAt
		conv.UpdatedAt = createdAt

		if err := tx.Create(r.messages(message.ConversationID).Doc(message.ID), message); err != nil {
			return err
		}
		return tx.Update(convRef, []firestore.Update{{Path: "updatedAt", Value: createdAt}})
	})
	if err != nil {
		return nil, txError("Failed to create message", err)
	}

	return &conv, nil
}

func (r *firestoreChatRepository) GetMessage(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	var msg entity.Message
	if err := getDoc(ctx, r.messages(conversationID).Doc(messageID), "Message", &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages orders by createdAt then id; ULIDs break ties between messages
// stamped with the same instant.
func (r *firestoreChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	query := r.messages(conversationID).
		Where("isDeleted", "==", false).
		OrderBy("createdAt", firestore.Asc).
		OrderBy("id", firestore.Asc)

	return collect[entity.Message](query.Documents(ctx), "messages")
}

func (r *firestoreChatRepository) MarkMessageDeleted(ctx context.Context, conversationID, messageID string) error {
	_, err := r.messages(conversationID).Doc(messageID).Update(ctx, []firestore.Update{
		{Path: "isDeleted", Value: true},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to delete message", err)
	}
	return nil
}
