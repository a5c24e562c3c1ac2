package models

import (
	"encoding/json"

	"github.com/samber/mo"
)

// WebhookShape identifies which of the accepted n8n response shapes a body matched.
type WebhookShape int

const (
	// WebhookShapeUnrecognized covers anything that is neither a non-empty
	// list of objects nor a single object (bare scalars, empty lists,
	// malformed JSON)
	WebhookShapeUnrecognized WebhookShape = iota
	// WebhookShapeList is a non-empty JSON array of objects; only the first
	// element is used
	WebhookShapeList
	// WebhookShapeObject is a single JSON object
	WebhookShapeObject
)

// WebhookResult is the decoded form of an n8n webhook response body.
type WebhookResult struct {
	Shape WebhookShape
	// Reply holds the extracted reply text when the matched object carried a
	// non-empty "reply" field
	Reply mo.Option[string]
}

// DecodeWebhookResponse normalizes the two accepted n8n response shapes into a
// single tagged result. n8n webhooks with responseMode=lastNode usually return
// a list of items, each wrapping its payload in a "json" field; single-object
// responses may carry the "json" wrapper or the payload directly.
func DecodeWebhookResponse(body []byte) WebhookResult {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return WebhookResult{Shape: WebhookShapeUnrecognized, Reply: mo.None[string]()}
	}

	var obj map[string]any
	var shape WebhookShape

	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return WebhookResult{Shape: WebhookShapeUnrecognized, Reply: mo.None[string]()}
		}
		first, ok := v[0].(map[string]any)
		if !ok {
			return WebhookResult{Shape: WebhookShapeUnrecognized, Reply: mo.None[string]()}
		}
		obj = unwrapItem(first)
		shape = WebhookShapeList
	case map[string]any:
		obj = unwrapItem(v)
		shape = WebhookShapeObject
	default:
		return WebhookResult{Shape: WebhookShapeUnrecognized, Reply: mo.None[string]()}
	}

	return WebhookResult{Shape: shape, Reply: extractReply(obj)}
}

// unwrapItem returns the nested "json" object when present, otherwise the
// item itself
func unwrapItem(item map[string]any) map[string]any {
	if nested, ok := item["json"].(map[string]any); ok {
		return nested
	}
	return item
}

func extractReply(obj map[string]any) mo.Option[string] {
	reply, ok := obj["reply"].(string)
	if !ok || reply == "" {
		return mo.None[string]()
	}
	return mo.Some(reply)
}
