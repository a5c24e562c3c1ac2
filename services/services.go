package services

import (
	"context"

	"lootbot/models"
)

// LootService orchestrates a single loot lookup against the n8n webhook
type LootService interface {
	// Lookup runs one webhook round-trip and returns the text to send back to
	// the user. Webhook failures degrade to fixed fallback messages, so the
	// returned string is always sendable.
	Lookup(ctx context.Context, request models.LootRequest) string
}

// CatalogService exposes the static loot item catalog
type CatalogService interface {
	// Items returns all catalog entries in their defined order
	Items() []string
	// Suggest returns up to 25 case-insensitive substring matches for partial
	Suggest(partial string) []string
}
