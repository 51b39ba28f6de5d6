package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

func TestDispatcher_EmptyBatchMakesNoCall(t *testing.T) {
	transport := &fakeTransport{}
	d := NewDispatcher(transport, zerolog.Nop())

	report, err := d.Dispatch(context.Background(), nil, models.NotificationPayload{Title: "New Message"})

	require.NoError(t, err)
	assert.Zero(t, report.Attempted)
	assert.Empty(t, transport.calls, "zero-recipient dispatch must not touch the transport")
}

func TestDispatcher_SingleMulticastCall(t *testing.T) {
	transport := &fakeTransport{}
	d := NewDispatcher(transport, zerolog.Nop())

	tokens := []string{"token-one-abcdef", "token-two-abcdef", "token-three-abcdef"}
	payload := models.NotificationPayload{
		Title: "New Message",
		Body:  "see you at the rack",
		Data:  map[string]string{"chatId": "c1", "messageId": "m1"},
	}

	report, err := d.Dispatch(context.Background(), tokens, payload)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, tokens, report.Tokens)

	require.Len(t, transport.calls, 1, "the whole batch goes out in one call")
	sent := transport.calls[0]
	assert.Equal(t, tokens, sent.Tokens)
	assert.Equal(t, "New Message", sent.Notification.Title)
	assert.Equal(t, "see you at the rack", sent.Notification.Body)
	assert.Equal(t, payload.Data, sent.Data)
}

func TestDispatcher_TransportErrorPropagates(t *testing.T) {
	transport := &fakeTransport{err: errors.New("quota exceeded")}
	d := NewDispatcher(transport, zerolog.Nop())

	_, err := d.Dispatch(context.Background(), []string{"token-one-abcdef"}, models.NotificationPayload{})

	require.Error(t, err)
	assert.ErrorContains(t, err, "quota exceeded")
}
