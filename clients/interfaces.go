package clients

import (
	"context"

	"lootbot/models"
)

// DiscordClient defines the Discord REST operations the handlers need
type DiscordClient interface {
	// SendChannelMessage sends a text message to the given channel
	SendChannelMessage(channelID, content string) error
	// GetGuildByID fetches guild information using the bot token
	GetGuildByID(guildID string) (*DiscordGuild, error)
}

// WebhookClient defines the interface for calling the n8n loot webhook
type WebhookClient interface {
	// Lookup POSTs the payload to the webhook and returns the raw response
	// body on any 2xx status
	Lookup(ctx context.Context, request models.LootRequest) ([]byte, error)
}
