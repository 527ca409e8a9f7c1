package interfaces

import (
	"context"
	"encoding/json"
)

// IDraftStore persists in-progress order edits under a caller-supplied
// namespace (an order id, or a fixed slot for brand-new orders). Save
// overwrites unconditionally; Load returns (nil, nil) for missing or
// unparsable entries instead of failing.
type IDraftStore interface {
	Save(ctx context.Context, namespace string, payload json.RawMessage) error
	Load(ctx context.Context, namespace string) (json.RawMessage, error)
	Delete(ctx context.Context, namespace string) error
}
