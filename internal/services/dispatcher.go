package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

// Multicaster is the one transport call the dispatcher makes.
// *messaging.Client satisfies it.
type Multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Dispatcher delivers a payload to a token batch in a single
// multicast call. Per-token outcomes are the transport's concern;
// the report only says how many deliveries were attempted.
type Dispatcher struct {
	transport Multicaster
	log       zerolog.Logger
}

func NewDispatcher(transport Multicaster, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, log: log}
}

// Dispatch issues one multicast delivery for the full token batch.
// An empty batch performs no transport call at all; multicast APIs
// reject zero-recipient sends.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, payload models.NotificationPayload) (models.DeliveryReport, error) {
	report := models.DeliveryReport{Attempted: len(tokens), Tokens: tokens}

	if len(tokens) == 0 {
		d.log.Info().Str("title", payload.Title).Msg("no device tokens, skipping delivery")
		return report, nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	}

	if _, err := d.transport.SendEachForMulticast(ctx, msg); err != nil {
		return models.DeliveryReport{}, fmt.Errorf("send multicast: %w", err)
	}

	d.log.Info().
		Int("deviceCount", len(tokens)).
		Str("title", payload.Title).
		Msg("notification sent")

	return report, nil
}
