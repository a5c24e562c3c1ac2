package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"lootbot/clients"
)

// DiscordClient implements the clients.DiscordClient interface on top of a
// REST-only discordgo session (never opened as a gateway connection)
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a new Discord client for REST operations
func NewDiscordClient(botToken string) (clients.DiscordClient, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordClient{session: session}, nil
}

// SendChannelMessage sends a text message to the given channel
func (c *DiscordClient) SendChannelMessage(channelID, content string) error {
	if _, err := c.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// GetGuildByID fetches specific guild information using the bot token
func (c *DiscordClient) GetGuildByID(guildID string) (*clients.DiscordGuild, error) {
	guild, err := c.session.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild: %w", err)
	}
	if guild == nil {
		return nil, fmt.Errorf("guild not found")
	}

	return &clients.DiscordGuild{
		ID:   guild.ID,
		Name: guild.Name,
	}, nil
}
