package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"lootbot/clients"
	"lootbot/models"
	"lootbot/services"
)

// LootCommandName is the registered slash command name
const LootCommandName = "loot"

var lootCommand = &discordgo.ApplicationCommand{
	Name:        LootCommandName,
	Description: "Check Arc Raiders loot info",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "item",
			Description:  "Name of the item to look up",
			Required:     true,
			Autocomplete: true,
		},
	},
}

// SlashCommandsHandler is the slash-command variant: it registers the global
// /loot command with autocomplete over the loot catalog and answers each
// invocation as an interaction response
type SlashCommandsHandler struct {
	discordSDKClient *discordgo.Session
	discordClient    clients.DiscordClient
	lootService      services.LootService
	catalogService   services.CatalogService
}

func NewSlashCommandsHandler(
	botToken string,
	discordClient clients.DiscordClient,
	lootService services.LootService,
	catalogService services.CatalogService,
) (*SlashCommandsHandler, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := &SlashCommandsHandler{
		discordSDKClient: session,
		discordClient:    discordClient,
		lootService:      lootService,
		catalogService:   catalogService,
	}

	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleInteractionCreateEvent)

	// No message content needed for slash commands
	session.Identify.Intents = discordgo.IntentsGuilds

	return handler, nil
}

// StartBot opens the Discord connection and registers the /loot command
// globally so it works in any server
func (h *SlashCommandsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if _, err := h.discordSDKClient.ApplicationCommandCreate(
		h.discordSDKClient.State.User.ID, "", lootCommand,
	); err != nil {
		h.discordSDKClient.Close()
		return fmt.Errorf("failed to register /%s command: %w", LootCommandName, err)
	}

	log.Printf("🤖 Discord bot is now running and serving /%s commands", LootCommandName)
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *SlashCommandsHandler) StopBot() {
	h.discordSDKClient.Close()
}

func (h *SlashCommandsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("🤖 Logged in as %s (ID: %s)", r.User.Username, r.User.ID)
}

// handleInteractionCreateEvent dispatches autocomplete and command invocations
func (h *SlashCommandsHandler) handleInteractionCreateEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	case discordgo.InteractionApplicationCommand:
		h.handleLootCommand(s, i)
	}
}

// handleAutocomplete answers the focused item option with up to 25 catalog
// suggestions matching what the user typed so far
func (h *SlashCommandsHandler) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != LootCommandName {
		return
	}

	var partial string
	for _, opt := range data.Options {
		if opt.Focused {
			partial = opt.StringValue()
			break
		}
	}

	choices := buildItemChoices(h.catalogService.Suggest(partial))
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("❌ Failed to send autocomplete choices: %v", err)
	}
}

// handleLootCommand runs the lookup for one /loot invocation. The response is
// deferred first since the webhook may take longer than the three seconds
// Discord allows for the initial interaction response.
func (h *SlashCommandsHandler) handleLootCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != LootCommandName {
		return
	}

	var item string
	for _, opt := range data.Options {
		if opt.Name == "item" {
			item = opt.StringValue()
			break
		}
	}

	event := mapToDiscordCommandEvent(i, item)
	log.Printf("📨 Received /%s command from %s in channel %s: %s",
		LootCommandName, event.Username, event.ChannelID, event.Item)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("❌ Failed to defer interaction response: %v", err)
		return
	}

	reply := h.lootService.Lookup(context.Background(), h.buildLootRequest(event))

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &reply,
	}); err != nil {
		log.Printf("❌ Failed to send interaction reply: %v", err)
	}
}

// buildLootRequest assembles the webhook payload for a command invocation.
// The guild name is looked up best-effort; the payload simply omits it when
// the lookup fails.
func (h *SlashCommandsHandler) buildLootRequest(event models.DiscordCommandEvent) models.LootRequest {
	request := models.LootRequest{
		Item:      event.Item,
		Content:   fmt.Sprintf("/%s %s", LootCommandName, event.Item),
		ChannelID: event.ChannelID,
		AuthorID:  event.UserID,
		Username:  event.Username,
		GuildID:   event.GuildID,
	}

	if event.GuildID != "" {
		guild, err := h.discordClient.GetGuildByID(event.GuildID)
		if err != nil {
			log.Printf("⚠️ Failed to fetch guild %s for payload: %v", event.GuildID, err)
		} else {
			request.GuildName = guild.Name
		}
	}

	return request
}

// buildItemChoices converts catalog suggestions into autocomplete choices
func buildItemChoices(items []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(items))
	for idx, name := range items {
		choices[idx] = &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		}
	}
	return choices
}

// mapToDiscordCommandEvent maps a Discord SDK interaction to our domain model.
// The invoking user lives on Member for guild invocations and directly on the
// interaction for DMs.
func mapToDiscordCommandEvent(i *discordgo.InteractionCreate, item string) models.DiscordCommandEvent {
	user := i.User
	if i.Member != nil {
		user = i.Member.User
	}

	event := models.DiscordCommandEvent{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Item:      item,
	}
	if user != nil {
		event.UserID = user.ID
		event.Username = user.Username
	}

	return event
}
