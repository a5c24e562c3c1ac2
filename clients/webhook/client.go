package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lootbot/clients"
	"lootbot/models"
)

// WebhookClient implements the clients.WebhookClient interface against the
// configured n8n webhook URL. One attempt per lookup, no retries.
type WebhookClient struct {
	httpClient *http.Client
	webhookURL string
}

// NewWebhookClient creates a webhook client with a bounded per-request timeout
func NewWebhookClient(webhookURL string, timeout time.Duration) clients.WebhookClient {
	return &WebhookClient{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
	}
}

// Lookup POSTs the payload as a JSON body and returns the raw response body.
// Transport failures and non-2xx statuses are both reported as errors.
func (c *WebhookClient) Lookup(ctx context.Context, request models.LootRequest) ([]byte, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("webhook request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook response body: %w", err)
	}

	return body, nil
}
