package services

import (
	"github.com/GoodHurtLifting/the-lift-league/internal/models"
)

const (
	messageTitle        = "New Message"
	messageFallbackBody = "You've got a message!"
	messageBodyLimit    = 60

	circleTitle = "Training Circle Update!"
	clinkBody   = "Clink posted in your circle."
	checkInBody = "Check-in posted in your circle."
)

// BuildMessagePayload constructs the push payload for a chat message.
// The body is the message text cut to 60 characters, or a fixed
// fallback when the message has no text.
func BuildMessagePayload(chatID, messageID string, msg *models.ChatMessage) models.NotificationPayload {
	body := messageFallbackBody
	if msg.Text != "" {
		body = truncate(msg.Text, messageBodyLimit)
	}
	return models.NotificationPayload{
		Title: messageTitle,
		Body:  body,
		Data: map[string]string{
			"chatId":    chatID,
			"messageId": messageID,
		},
	}
}

// BuildCirclePayload constructs the push payload for a timeline
// entry. Wording is a two-way choice on the entry type.
func BuildCirclePayload(ownerID, entryID string, entry *models.TimelineEntry) models.NotificationPayload {
	body := checkInBody
	if entry.Type == models.EntryTypeClink {
		body = clinkBody
	}
	return models.NotificationPayload{
		Title: circleTitle,
		Body:  body,
		Data: map[string]string{
			"userId":  ownerID,
			"entryId": entryID,
		},
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
