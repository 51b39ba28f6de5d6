package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

// PreferenceCategory names the notificationPrefs key that governs a
// pipeline run.
type PreferenceCategory string

const (
	CategoryMessages       PreferenceCategory = "messages"
	CategoryTrainingCircle PreferenceCategory = "trainingCircle"
)

// PrefState is the three-valued result of a preference lookup. Unset
// means the user never touched the setting; the caller decides what
// that defaults to.
type PrefState int

const (
	PrefUnset PrefState = iota
	PrefExplicitOn
	PrefExplicitOff
)

// PreferenceFor looks up a category in a profile's preference map.
func PreferenceFor(prefs map[string]bool, category PreferenceCategory) PrefState {
	enabled, ok := prefs[string(category)]
	if !ok {
		return PrefUnset
	}
	if enabled {
		return PrefExplicitOn
	}
	return PrefExplicitOff
}

// ProfileReader is the slice of the user store the filter needs.
type ProfileReader interface {
	ProfilesByIDs(ctx context.Context, ids []string) ([]*models.UserProfile, error)
}

// PreferenceFilter drops candidates who opted out of a category and
// extracts the device token of everyone who remains.
type PreferenceFilter struct {
	profiles ProfileReader
	log      zerolog.Logger
}

func NewPreferenceFilter(profiles ProfileReader, log zerolog.Logger) *PreferenceFilter {
	return &PreferenceFilter{profiles: profiles, log: log}
}

// Filter returns the raw device tokens of candidates whose preference
// for the category is on, explicitly or by default. Unset defaults to
// notify; that is a product decision, not an accident. Output order
// follows the store's batched lookup, not the input. Tokens are raw:
// they may be empty or garbage, validation is the next stage's job.
func (f *PreferenceFilter) Filter(ctx context.Context, candidateIDs []string, category PreferenceCategory) ([]string, error) {
	if len(candidateIDs) == 0 {
		// An empty membership query is invalid, don't issue one.
		return nil, nil
	}

	profiles, err := f.profiles.ProfilesByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("load candidate profiles: %w", err)
	}

	tokens := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if PreferenceFor(profile.NotificationPrefs, category) == PrefExplicitOff {
			f.log.Debug().
				Str("userId", profile.UserID).
				Str("category", string(category)).
				Msg("notifications disabled, skipping candidate")
			continue
		}
		tokens = append(tokens, profile.FCMToken)
	}

	return tokens, nil
}
