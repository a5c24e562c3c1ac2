package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// DiscordToken is the bot token used to authenticate with Discord
	DiscordToken string
	// WebhookURL is the n8n webhook that computes loot lookup replies
	WebhookURL string

	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	discordToken, err := getEnvRequired("DISCORD_TOKEN")
	if err != nil {
		return nil, err
	}

	webhookURL, err := getEnvRequired("N8N_WEBHOOK_URL")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		DiscordToken:       discordToken,
		WebhookURL:         webhookURL,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
	}, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
