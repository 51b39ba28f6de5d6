package services

import (
	"context"
	"slices"

	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

type fakeChatStore struct {
	chats map[string]*models.Chat
	err   error
}

func (f *fakeChatStore) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chats[chatID], nil
}

type fakeCircleStore struct {
	members map[string][]string
	err     error
}

func (f *fakeCircleStore) CircleMemberIDs(ctx context.Context, ownerID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members[ownerID], nil
}

type fakeProfileStore struct {
	profiles []*models.UserProfile
	err      error
	queries  [][]string
}

// ProfilesByIDs returns the configured profiles whose id is in ids,
// in configured order, mimicking a batched store lookup.
func (f *fakeProfileStore) ProfilesByIDs(ctx context.Context, ids []string) ([]*models.UserProfile, error) {
	f.queries = append(f.queries, ids)
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.UserProfile
	for _, p := range f.profiles {
		if slices.Contains(ids, p.UserID) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTransport struct {
	calls []*messaging.MulticastMessage
	err   error
}

func (f *fakeTransport) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, msg)
	return &messaging.BatchResponse{SuccessCount: len(msg.Tokens)}, nil
}

func newTestFanout(chats *fakeChatStore, circles *fakeCircleStore, profiles *fakeProfileStore, transport *fakeTransport) *FanoutService {
	log := zerolog.Nop()
	return NewFanoutService(
		NewAudienceResolver(chats, circles),
		NewPreferenceFilter(profiles, log),
		NewDispatcher(transport, log),
		log,
	)
}
