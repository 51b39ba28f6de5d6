package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
	"github.com/GoodHurtLifting/the-lift-league/internal/services"
)

type stubStore struct {
	chats   map[string]*models.Chat
	circles map[string][]string
	users   []*models.UserProfile
}

func (s *stubStore) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	return s.chats[chatID], nil
}

func (s *stubStore) CircleMemberIDs(ctx context.Context, ownerID string) ([]string, error) {
	return s.circles[ownerID], nil
}

func (s *stubStore) ProfilesByIDs(ctx context.Context, ids []string) ([]*models.UserProfile, error) {
	var out []*models.UserProfile
	for _, p := range s.users {
		for _, id := range ids {
			if p.UserID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type stubTransport struct {
	calls []*messaging.MulticastMessage
}

func (s *stubTransport) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	s.calls = append(s.calls, msg)
	return &messaging.BatchResponse{SuccessCount: len(msg.Tokens)}, nil
}

func newTestRouter(store *stubStore, transport *stubTransport) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	fanout := services.NewFanoutService(
		services.NewAudienceResolver(store, store),
		services.NewPreferenceFilter(store, log),
		services.NewDispatcher(transport, log),
		log,
	)
	handler := NewEventHandler(fanout, log)

	router := gin.New()
	router.POST("/api/events/chats/:chatId/messages/:messageId", handler.ChatMessageCreated)
	router.POST("/api/events/users/:userId/timeline-entries/:entryId", handler.TimelineEntryCreated)
	return router
}

const testToken = "token-abcdefghijklmnopqrstuvwxyz-0123456789"

func TestChatMessageCreated(t *testing.T) {
	store := &stubStore{
		chats: map[string]*models.Chat{"c1": {Members: []string{"u1", "u2"}}},
		users: []*models.UserProfile{{UserID: "u2", FCMToken: testToken}},
	}
	transport := &stubTransport{}
	router := newTestRouter(store, transport)

	req := httptest.NewRequest(http.MethodPost, "/api/events/chats/c1/messages/m1",
		strings.NewReader(`{"senderId":"u1","text":"leg day?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, transport.calls, 1)
	assert.Equal(t, []string{testToken}, transport.calls[0].Tokens)
	assert.Equal(t, "leg day?", transport.calls[0].Notification.Body)
}

func TestChatMessageCreated_EmptyBodyIsBenign(t *testing.T) {
	store := &stubStore{chats: map[string]*models.Chat{"c1": {Members: []string{"u1", "u2"}}}}
	transport := &stubTransport{}
	router := newTestRouter(store, transport)

	req := httptest.NewRequest(http.MethodPost, "/api/events/chats/c1/messages/m1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, transport.calls)
}

func TestChatMessageCreated_MalformedBody(t *testing.T) {
	router := newTestRouter(&stubStore{}, &stubTransport{})

	req := httptest.NewRequest(http.MethodPost, "/api/events/chats/c1/messages/m1",
		strings.NewReader(`{"senderId":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatMessageCreated_BadDocumentID(t *testing.T) {
	router := newTestRouter(&stubStore{}, &stubTransport{})

	// ".." is not a valid Firestore document id.
	req := httptest.NewRequest(http.MethodPost, "/api/events/chats/../messages/m1",
		strings.NewReader(`{"senderId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Gin normalizes the path before routing, so this either misses
	// the route or fails id validation; it must never reach fan-out.
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestTimelineEntryCreated(t *testing.T) {
	store := &stubStore{
		circles: map[string][]string{"u1": {"u2"}},
		users:   []*models.UserProfile{{UserID: "u2", FCMToken: testToken}},
	}
	transport := &stubTransport{}
	router := newTestRouter(store, transport)

	req := httptest.NewRequest(http.MethodPost, "/api/events/users/u1/timeline-entries/e1",
		strings.NewReader(`{"type":"clink"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, transport.calls, 1)
	assert.Equal(t, "Clink posted in your circle.", transport.calls[0].Notification.Body)
}
