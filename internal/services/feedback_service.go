package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// ErrFeedbackUnavailable is the only error callers see from the
// feedback path. The underlying cause is logged, never exposed.
var ErrFeedbackUnavailable = errors.New("failed to generate feedback")

const feedbackPrompt = `You are a strength training coach reviewing a users custom training block. Evaluate the overall structure, balance, and effectiveness of the block using the following data:

%s

Provide 2-3 specific points of feedback. Be encouraging but honest. Sound like a knowledgeable gym coach.`

// ChatCompleter is the one completion call the feedback service
// makes. *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// FeedbackService turns a training-block description into free-text
// coach feedback via a single prompt-completion call. No fan-out
// logic lives here.
type FeedbackService struct {
	completions ChatCompleter
	model       string
	log         zerolog.Logger
}

func NewFeedbackService(completions ChatCompleter, model string, log zerolog.Logger) *FeedbackService {
	if model == "" {
		model = openai.GPT4o
	}
	return &FeedbackService{completions: completions, model: model, log: log}
}

// EvaluateTrainingBlock renders the coach prompt around the block
// data and returns the model's feedback text.
func (s *FeedbackService) EvaluateTrainingBlock(ctx context.Context, block map[string]any) (string, error) {
	blockJSON, err := json.MarshalIndent(block, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Msg("encode training block")
		return "", ErrFeedbackUnavailable
	}

	resp, err := s.completions.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(feedbackPrompt, blockJSON),
			},
		},
	})
	if err != nil {
		s.log.Error().Err(err).Msg("ai feedback request failed")
		return "", ErrFeedbackUnavailable
	}
	if len(resp.Choices) == 0 {
		s.log.Error().Msg("ai feedback response carried no choices")
		return "", ErrFeedbackUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}
