package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
	"github.com/GoodHurtLifting/the-lift-league/internal/services"
	"github.com/GoodHurtLifting/the-lift-league/pkg/utils"
)

// EventHandler receives record-created callbacks from the trigger
// infrastructure, one call per created document.
type EventHandler struct {
	fanout *services.FanoutService
	log    zerolog.Logger
}

func NewEventHandler(fanout *services.FanoutService, log zerolog.Logger) *EventHandler {
	return &EventHandler{fanout: fanout, log: log}
}

// ChatMessageCreated handles POST /api/events/chats/:chatId/messages/:messageId.
// The body is the message snapshot; an empty body means the trigger
// fired without one, which ends the run as a logged no-op.
func (h *EventHandler) ChatMessageCreated(c *gin.Context) {
	chatID := c.Param("chatId")
	messageID := c.Param("messageId")
	if err := utils.ValidateDocumentID(chatID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chatId: " + err.Error()})
		return
	}
	if err := utils.ValidateDocumentID(messageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messageId: " + err.Error()})
		return
	}

	msg, ok := bindSnapshot[models.ChatMessage](c)
	if !ok {
		return
	}

	if err := h.fanout.HandleChatMessage(c.Request.Context(), chatID, messageID, msg); err != nil {
		h.log.Error().Err(err).
			Str("chatId", chatID).
			Str("messageId", messageID).
			Msg("message fan-out failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fan-out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TimelineEntryCreated handles POST /api/events/users/:userId/timeline-entries/:entryId.
func (h *EventHandler) TimelineEntryCreated(c *gin.Context) {
	userID := c.Param("userId")
	entryID := c.Param("entryId")
	if err := utils.ValidateDocumentID(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId: " + err.Error()})
		return
	}
	if err := utils.ValidateDocumentID(entryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entryId: " + err.Error()})
		return
	}

	entry, ok := bindSnapshot[models.TimelineEntry](c)
	if !ok {
		return
	}

	if err := h.fanout.HandleTimelineEntry(c.Request.Context(), userID, entryID, entry); err != nil {
		h.log.Error().Err(err).
			Str("userId", userID).
			Str("entryId", entryID).
			Msg("timeline fan-out failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fan-out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindSnapshot decodes the request body into a record snapshot. An
// empty body yields (nil, true): absent snapshot, still a valid
// request. Malformed JSON writes a 400 and yields ok=false.
func bindSnapshot[T any](c *gin.Context) (*T, bool) {
	var snap T
	switch err := c.ShouldBindJSON(&snap); {
	case err == nil:
		return &snap, true
	case errors.Is(err, io.EOF):
		return nil, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
}
