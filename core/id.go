package core

import (
	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a ULID-based correlation ID for a single loot lookup.
// Example: "req_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewRequestID() string {
	return "req_" + ulid.Make().String()
}
