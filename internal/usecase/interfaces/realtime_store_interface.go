package interfaces

import (
	"context"
	"encoding/json"
)

// Snapshot is a whole-collection view keyed by store key. Values are the raw
// document bodies; decoding is the consumer's problem.
type Snapshot map[string]json.RawMessage

// IRealtimeStore abstracts the document store the dashboard sits on.
//
// Paths are "collection" or "collection/key". Subscribe delivers the current
// snapshot immediately and again after every observed change; consumers are
// expected to recompute their derived state in full on each delivery (the
// push is idempotent, there is no incremental diff).
type IRealtimeStore interface {
	Subscribe(ctx context.Context, path string, onSnapshot func(Snapshot)) (cancel func(), err error)
	FetchOnce(ctx context.Context, path string) (json.RawMessage, error)
	Write(ctx context.Context, path string, value interface{}) error
	Patch(ctx context.Context, path string, partial map[string]interface{}) error
	Delete(ctx context.Context, path string) error
}
