package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

type ChatRepository struct {
	client *firestore.Client
}

func NewChatRepository(client *firestore.Client) *ChatRepository {
	return &ChatRepository{client: client}
}

// GetChat reads a chat document by id. A missing document returns
// (nil, nil): the chat was deleted between the message write and
// this read, which is not an error.
func (r *ChatRepository) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	doc, err := r.client.Collection("chats").Doc(chatID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var chat models.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, err
	}

	return &chat, nil
}
