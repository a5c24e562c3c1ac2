package loot

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lootbot/models"
)

// MockLootService is a mock implementation of the services.LootService interface
type MockLootService struct {
	mock.Mock
}

func (m *MockLootService) Lookup(ctx context.Context, request models.LootRequest) string {
	args := m.Called(ctx, request)
	return args.String(0)
}
