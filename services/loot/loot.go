package loot

import (
	"context"
	"log"

	"lootbot/clients"
	"lootbot/core"
	"lootbot/models"
)

// Fixed user-facing fallbacks. Every webhook failure degrades to one of these
// instead of surfacing an error to the caller.
const (
	NetworkErrorReply     = "⚠️ Error talking to loot service. Try again in a bit."
	UnexpectedFormatReply = "⚠️ Loot service responded with an unexpected format."
	MissingReplyReply     = "⚠️ Loot service did not provide a reply field."
)

type LootService struct {
	webhookClient clients.WebhookClient
}

func NewLootService(webhookClient clients.WebhookClient) *LootService {
	return &LootService{webhookClient: webhookClient}
}

// Lookup runs one lookup round-trip against the n8n webhook and returns the
// text to send back to the user
func (s *LootService) Lookup(ctx context.Context, request models.LootRequest) string {
	reqID := core.NewRequestID()
	log.Printf("📋 [%s] Starting loot lookup from user %s in channel %s: %s",
		reqID, request.Username, request.ChannelID, request.Content)

	body, err := s.webhookClient.Lookup(ctx, request)
	if err != nil {
		log.Printf("❌ [%s] Failed to call loot webhook: %v", reqID, err)
		return NetworkErrorReply
	}

	result := models.DecodeWebhookResponse(body)
	if result.Shape == models.WebhookShapeUnrecognized {
		log.Printf("⚠️ [%s] Unexpected loot webhook response shape: %.200s", reqID, string(body))
		return UnexpectedFormatReply
	}

	reply, ok := result.Reply.Get()
	if !ok {
		log.Printf("⚠️ [%s] Loot webhook response has no reply field", reqID)
		return MissingReplyReply
	}

	log.Printf("✅ [%s] Completed loot lookup (%d characters)", reqID, len(reply))
	return reply
}
