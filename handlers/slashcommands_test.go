package handlers

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lootbot/clients"
	discordclient "lootbot/clients/discord"
	"lootbot/models"
	"lootbot/services/catalog"
)

func TestBuildItemChoices(t *testing.T) {
	choices := buildItemChoices([]string{"Water Pump", "Turbo Pump"})

	require.Len(t, choices, 2)
	assert.Equal(t, "Water Pump", choices[0].Name)
	assert.Equal(t, "Water Pump", choices[0].Value)
	assert.Equal(t, "Turbo Pump", choices[1].Name)
	assert.Equal(t, "Turbo Pump", choices[1].Value)
}

func TestBuildItemChoices_NeverExceedsDiscordLimit(t *testing.T) {
	service := catalog.NewCatalogService(catalog.DefaultItems())

	choices := buildItemChoices(service.Suggest(""))

	assert.Len(t, choices, catalog.MaxSuggestions)
}

func TestMapToDiscordCommandEvent_GuildInvocation(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID:   "guild123",
			ChannelID: "channel123",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user123", Username: "raider"},
			},
		},
	}

	event := mapToDiscordCommandEvent(interaction, "Water Pump")

	assert.Equal(t, models.DiscordCommandEvent{
		GuildID:   "guild123",
		ChannelID: "channel123",
		UserID:    "user123",
		Username:  "raider",
		Item:      "Water Pump",
	}, event)
}

func TestMapToDiscordCommandEvent_DMInvocation(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ChannelID: "dm123",
			User:      &discordgo.User{ID: "user123", Username: "raider"},
		},
	}

	event := mapToDiscordCommandEvent(interaction, "Battery")

	assert.Empty(t, event.GuildID)
	assert.Equal(t, "dm123", event.ChannelID)
	assert.Equal(t, "user123", event.UserID)
	assert.Equal(t, "raider", event.Username)
}

func TestSlashCommandsHandler_BuildLootRequest_WithGuild(t *testing.T) {
	mockDiscordClient := &discordclient.MockDiscordClient{}
	handler := &SlashCommandsHandler{discordClient: mockDiscordClient}

	mockDiscordClient.On("GetGuildByID", "guild123").
		Return(&clients.DiscordGuild{ID: "guild123", Name: "Speranza"}, nil)

	request := handler.buildLootRequest(models.DiscordCommandEvent{
		GuildID:   "guild123",
		ChannelID: "channel123",
		UserID:    "user123",
		Username:  "raider",
		Item:      "Water Pump",
	})

	assert.Equal(t, models.LootRequest{
		Item:      "Water Pump",
		Content:   "/loot Water Pump",
		ChannelID: "channel123",
		AuthorID:  "user123",
		Username:  "raider",
		GuildID:   "guild123",
		GuildName: "Speranza",
	}, request)
	mockDiscordClient.AssertExpectations(t)
}

func TestSlashCommandsHandler_BuildLootRequest_GuildLookupFailure(t *testing.T) {
	mockDiscordClient := &discordclient.MockDiscordClient{}
	handler := &SlashCommandsHandler{discordClient: mockDiscordClient}

	mockDiscordClient.On("GetGuildByID", "guild123").
		Return(nil, fmt.Errorf("missing access"))

	request := handler.buildLootRequest(models.DiscordCommandEvent{
		GuildID:   "guild123",
		ChannelID: "channel123",
		UserID:    "user123",
		Username:  "raider",
		Item:      "Battery",
	})

	// Guild name is best-effort; the payload omits it on lookup failure
	assert.Equal(t, "guild123", request.GuildID)
	assert.Empty(t, request.GuildName)
}

func TestSlashCommandsHandler_BuildLootRequest_DM(t *testing.T) {
	mockDiscordClient := &discordclient.MockDiscordClient{}
	handler := &SlashCommandsHandler{discordClient: mockDiscordClient}

	request := handler.buildLootRequest(models.DiscordCommandEvent{
		ChannelID: "dm123",
		UserID:    "user123",
		Username:  "raider",
		Item:      "Battery",
	})

	assert.Empty(t, request.GuildID)
	assert.Empty(t, request.GuildName)
	mockDiscordClient.AssertNotCalled(t, "GetGuildByID", mock.Anything)
}
