package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, loaded once at startup.
type Config struct {
	Port                    string `env:"PORT" envDefault:"8080"`
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH" envDefault:"./serviceAccountKey.json"`
	OpenAIAPIKey            string `env:"OPENAI_API_KEY"`
	OpenAIModel             string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty               bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads configuration from the environment. A .env file is
// loaded first when present so local development matches production.
func Load() (Config, error) {
	// Missing .env is fine, system environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
