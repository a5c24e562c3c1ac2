package discord

import (
	"github.com/stretchr/testify/mock"

	"lootbot/clients"
)

// MockDiscordClient is a mock implementation of the clients.DiscordClient interface
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) SendChannelMessage(channelID, content string) error {
	args := m.Called(channelID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) GetGuildByID(guildID string) (*clients.DiscordGuild, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordGuild), args.Error(1)
}
