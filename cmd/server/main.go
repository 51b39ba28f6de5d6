package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/GoodHurtLifting/the-lift-league/internal/config"
	"github.com/GoodHurtLifting/the-lift-league/internal/handlers"
	"github.com/GoodHurtLifting/the-lift-league/internal/middleware"
	"github.com/GoodHurtLifting/the-lift-league/internal/repository"
	"github.com/GoodHurtLifting/the-lift-league/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load configuration")
	}

	logger := newLogger(cfg)

	ctx := context.Background()
	clients, err := config.NewClients(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("initialize firebase clients")
	}
	defer clients.Close()
	logger.Info().Msg("firebase clients initialized")

	// Repositories over the shared Firestore client.
	chatRepo := repository.NewChatRepository(clients.Firestore)
	userRepo := repository.NewUserRepository(clients.Firestore)

	// Fan-out engine.
	audience := services.NewAudienceResolver(chatRepo, userRepo)
	prefs := services.NewPreferenceFilter(userRepo, logger)
	dispatcher := services.NewDispatcher(clients.Messaging, logger)
	fanout := services.NewFanoutService(audience, prefs, dispatcher, logger)

	// AI feedback path.
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	feedback := services.NewFeedbackService(openaiClient, cfg.OpenAIModel, logger)

	eventHandler := handlers.NewEventHandler(fanout, logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedback)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Lift League notification API is running",
		})
	})

	api := router.Group("/api")
	{
		events := api.Group("/events")
		{
			events.POST("/chats/:chatId/messages/:messageId", eventHandler.ChatMessageCreated)
			events.POST("/users/:userId/timeline-entries/:entryId", eventHandler.TimelineEntryCreated)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/evaluate-block", feedbackHandler.EvaluateBlock)
		}
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.LogPretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}
