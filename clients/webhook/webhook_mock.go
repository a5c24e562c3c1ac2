package webhook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lootbot/models"
)

// MockWebhookClient is a mock implementation of the clients.WebhookClient interface
type MockWebhookClient struct {
	mock.Mock
}

func (m *MockWebhookClient) Lookup(ctx context.Context, request models.LootRequest) ([]byte, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
