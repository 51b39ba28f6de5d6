package services

import (
	"context"
	"fmt"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

// ChatReader is the slice of the chat store the resolver needs.
// GetChat returns (nil, nil) for a chat that no longer exists.
type ChatReader interface {
	GetChat(ctx context.Context, chatID string) (*models.Chat, error)
}

// CircleReader enumerates a user's training-circle member ids.
type CircleReader interface {
	CircleMemberIDs(ctx context.Context, ownerID string) ([]string, error)
}

// AudienceResolver produces the raw candidate recipient set for a
// trigger. The triggering user is always excluded.
type AudienceResolver struct {
	chats   ChatReader
	circles CircleReader
}

func NewAudienceResolver(chats ChatReader, circles CircleReader) *AudienceResolver {
	return &AudienceResolver{chats: chats, circles: circles}
}

// ChatMembers resolves a message trigger's audience: the chat's
// member list minus the sender. A deleted chat yields an empty
// audience rather than an error.
func (r *AudienceResolver) ChatMembers(ctx context.Context, chatID, senderID string) ([]string, error) {
	chat, err := r.chats.GetChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("load chat %s: %w", chatID, err)
	}
	if chat == nil {
		return nil, nil
	}
	return excludeID(chat.Members, senderID), nil
}

// CircleMembers resolves a timeline-entry trigger's audience: the
// owner's circle member ids minus the owner themselves.
func (r *AudienceResolver) CircleMembers(ctx context.Context, ownerID string) ([]string, error) {
	ids, err := r.circles.CircleMemberIDs(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load training circle of %s: %w", ownerID, err)
	}
	return excludeID(ids, ownerID), nil
}

func excludeID(ids []string, excluded string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != excluded {
			out = append(out, id)
		}
	}
	return out
}
