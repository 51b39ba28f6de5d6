package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

// FanoutService runs the notification pipeline for a triggering
// record: resolve audience, filter by preference, validate tokens,
// dispatch. Both trigger kinds share the one engine and differ only
// in the strategy values below.
type FanoutService struct {
	audience *AudienceResolver
	prefs    *PreferenceFilter
	dispatch *Dispatcher
	log      zerolog.Logger
}

func NewFanoutService(audience *AudienceResolver, prefs *PreferenceFilter, dispatch *Dispatcher, log zerolog.Logger) *FanoutService {
	return &FanoutService{
		audience: audience,
		prefs:    prefs,
		dispatch: dispatch,
		log:      log,
	}
}

// fanoutStrategy parameterizes one pipeline run: how to discover the
// audience, which preference key governs it, and what to send.
type fanoutStrategy struct {
	name     string
	category PreferenceCategory
	resolve  func(ctx context.Context) ([]string, error)
	payload  func() models.NotificationPayload
}

// HandleChatMessage fans out a newly created chat message to the
// chat's other members. A nil snapshot means the trigger fired for a
// record that is already gone; that is a benign no-op.
func (s *FanoutService) HandleChatMessage(ctx context.Context, chatID, messageID string, msg *models.ChatMessage) error {
	if msg == nil {
		s.log.Info().
			Str("chatId", chatID).
			Str("messageId", messageID).
			Msg("message snapshot missing, nothing to fan out")
		return nil
	}

	return s.run(ctx, fanoutStrategy{
		name:     "chat_message",
		category: CategoryMessages,
		resolve: func(ctx context.Context) ([]string, error) {
			return s.audience.ChatMembers(ctx, chatID, msg.SenderID)
		},
		payload: func() models.NotificationPayload {
			return BuildMessagePayload(chatID, messageID, msg)
		},
	})
}

// HandleTimelineEntry fans out a newly created timeline entry to the
// owner's training circle.
func (s *FanoutService) HandleTimelineEntry(ctx context.Context, ownerID, entryID string, entry *models.TimelineEntry) error {
	if entry == nil {
		s.log.Info().
			Str("userId", ownerID).
			Str("entryId", entryID).
			Msg("timeline entry snapshot missing, nothing to fan out")
		return nil
	}

	return s.run(ctx, fanoutStrategy{
		name:     "timeline_entry",
		category: CategoryTrainingCircle,
		resolve: func(ctx context.Context) ([]string, error) {
			return s.audience.CircleMembers(ctx, ownerID)
		},
		payload: func() models.NotificationPayload {
			return BuildCirclePayload(ownerID, entryID, entry)
		},
	})
}

// run walks the pipeline stages in order, stopping quietly whenever
// a stage leaves nothing to deliver. Store and transport failures
// propagate so the caller's retry accounting sees them.
func (s *FanoutService) run(ctx context.Context, strat fanoutStrategy) error {
	candidates, err := strat.resolve(ctx)
	if err != nil {
		return fmt.Errorf("%s: resolve audience: %w", strat.name, err)
	}
	if len(candidates) == 0 {
		s.log.Info().Str("trigger", strat.name).Msg("empty audience, fan-out aborted")
		return nil
	}

	raw, err := s.prefs.Filter(ctx, candidates, strat.category)
	if err != nil {
		return fmt.Errorf("%s: filter preferences: %w", strat.name, err)
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if verdict := CheckToken(tok); verdict != TokenValid {
			s.log.Debug().
				Str("trigger", strat.name).
				Str("reason", verdict.String()).
				Msg("dropping device token")
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		s.log.Info().
			Str("trigger", strat.name).
			Int("candidates", len(candidates)).
			Msg("no valid device tokens, fan-out aborted")
		return nil
	}

	report, err := s.dispatch.Dispatch(ctx, tokens, strat.payload())
	if err != nil {
		return fmt.Errorf("%s: %w", strat.name, err)
	}

	s.log.Info().
		Str("trigger", strat.name).
		Int("attempted", report.Attempted).
		Msg("fan-out dispatched")
	return nil
}
