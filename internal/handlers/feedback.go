package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoodHurtLifting/the-lift-league/internal/models"
	"github.com/GoodHurtLifting/the-lift-league/internal/services"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// EvaluateBlock handles POST /api/ai/evaluate-block. Whatever goes
// wrong downstream, the caller only ever sees the generic error.
func (h *FeedbackHandler) EvaluateBlock(c *gin.Context) {
	var req models.EvaluateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedback.EvaluateTrainingBlock(c.Request.Context(), req.Block)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrFeedbackUnavailable.Error()})
		return
	}

	c.JSON(http.StatusOK, models.EvaluateBlockResponse{Feedback: feedback})
}
