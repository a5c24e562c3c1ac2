package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"lootbot/clients"
	"lootbot/models"
	"lootbot/services"
)

// CommandPrefix marks a plain-text message as a loot lookup command
const CommandPrefix = "!loot-bot"

// DiscordEventsHandler is the prefix-command variant: it listens for plain
// messages starting with CommandPrefix and replies in the same channel
type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	discordClient    clients.DiscordClient
	lootService      services.LootService
}

func NewDiscordEventsHandler(
	botToken string,
	discordClient clients.DiscordClient,
	lootService services.LootService,
) (*DiscordEventsHandler, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		discordClient:    discordClient,
		lootService:      lootService,
	}

	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleMessageCreatedEvent)

	// Message content intent is required to read command text
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return handler, nil
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for %s commands", CommandPrefix)
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("🤖 Logged in as %s (ID: %s)", r.User.Username, r.User.ID)
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.processMessageEvent(context.Background(), mapToDiscordMessageEvent(m))
}

// processMessageEvent runs the gating and lookup for one inbound message.
// Each invocation is self-contained; reply delivery failures are logged and
// swallowed since the originating interaction has no other recipient.
func (h *DiscordEventsHandler) processMessageEvent(ctx context.Context, event models.DiscordMessageEvent) {
	// Ignore any bot messages (including ourselves)
	if event.FromBot {
		return
	}

	content := strings.TrimSpace(event.Content)
	if !strings.HasPrefix(strings.ToLower(content), CommandPrefix) {
		return
	}

	log.Printf("📨 Received loot request from %s in channel %s: %s",
		event.Username, event.ChannelID, content)

	reply := h.lootService.Lookup(ctx, models.LootRequest{
		Content:   content,
		ChannelID: event.ChannelID,
		AuthorID:  event.UserID,
		Username:  event.Username,
	})

	if err := h.discordClient.SendChannelMessage(event.ChannelID, reply); err != nil {
		log.Printf("❌ Failed to send reply to channel %s: %v", event.ChannelID, err)
	}
}

// mapToDiscordMessageEvent maps a Discord SDK message event to our domain model
func mapToDiscordMessageEvent(m *discordgo.MessageCreate) models.DiscordMessageEvent {
	return models.DiscordMessageEvent{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Content:   m.Content,
		FromBot:   m.Author.Bot,
	}
}
