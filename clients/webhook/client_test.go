package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lootbot/models"
)

func TestWebhookClient_Lookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Validate request
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		err := json.NewDecoder(r.Body).Decode(&payload)
		require.NoError(t, err)
		assert.Equal(t, "!loot-bot water pump", payload["content"])
		assert.Equal(t, "channel123", payload["channel_id"])
		assert.Equal(t, "user123", payload["author_id"])
		assert.Equal(t, "raider", payload["username"])

		// Optional fields must be omitted when empty
		_, hasGuildID := payload["guild_id"]
		assert.False(t, hasGuildID)
		_, hasItem := payload["item"]
		assert.False(t, hasItem)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"json": {"reply": "Water Pump: found in Dam Battlegrounds"}}]`))
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, 8*time.Second)
	body, err := client.Lookup(context.Background(), models.LootRequest{
		Content:   "!loot-bot water pump",
		ChannelID: "channel123",
		AuthorID:  "user123",
		Username:  "raider",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"json": {"reply": "Water Pump: found in Dam Battlegrounds"}}]`, string(body))
}

func TestWebhookClient_Lookup_OptionalFieldsIncluded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		err := json.NewDecoder(r.Body).Decode(&payload)
		require.NoError(t, err)
		assert.Equal(t, "guild123", payload["guild_id"])
		assert.Equal(t, "Speranza", payload["guild_name"])
		assert.Equal(t, "Water Pump", payload["item"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"reply": "ok"}`))
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, 8*time.Second)
	_, err := client.Lookup(context.Background(), models.LootRequest{
		Content:   "/loot Water Pump",
		ChannelID: "channel123",
		AuthorID:  "user123",
		Username:  "raider",
		GuildID:   "guild123",
		GuildName: "Speranza",
		Item:      "Water Pump",
	})

	require.NoError(t, err)
}

func TestWebhookClient_Lookup_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("workflow error"))
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, 8*time.Second)
	body, err := client.Lookup(context.Background(), models.LootRequest{})

	assert.Nil(t, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestWebhookClient_Lookup_TransportFailure(t *testing.T) {
	// Closed server simulates connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewWebhookClient(server.URL, 2*time.Second)
	body, err := client.Lookup(context.Background(), models.LootRequest{})

	assert.Nil(t, body)
	require.Error(t, err)
}
