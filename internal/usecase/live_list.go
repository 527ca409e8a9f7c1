package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"tiembanh_mousse/internal/usecase/interfaces"
)

// ErrStoreLoadTimeout is surfaced when the store never delivers a first
// snapshot within the configured window. The collection is then treated as
// loaded-and-empty instead of hanging consumers forever.
var ErrStoreLoadTimeout = errors.New("store subscription timed out")

const defaultLoadTimeout = 10 * time.Second

// liveList keeps an in-memory copy of one store collection, rebuilt in full
// on every snapshot push. There is exactly one producer (the subscription
// callback), so last-write-wins replacement is safe; readers get copies.
type liveList[T any] struct {
	store       interfaces.IRealtimeStore
	path        string
	decode      func(id string, doc json.RawMessage) (T, bool)
	loadTimeout time.Duration

	mu      sync.RWMutex
	items   []T
	loaded  bool
	loadErr error

	firstOnce sync.Once
	first     chan struct{}
	cancel    func()
}

func newLiveList[T any](store interfaces.IRealtimeStore, path string, decode func(string, json.RawMessage) (T, bool)) *liveList[T] {
	return &liveList[T]{
		store:       store,
		path:        path,
		decode:      decode,
		loadTimeout: defaultLoadTimeout,
		first:       make(chan struct{}),
	}
}

func (l *liveList[T]) Start(ctx context.Context) error {
	cancel, err := l.store.Subscribe(ctx, l.path, l.onSnapshot)
	if err != nil {
		l.mu.Lock()
		l.loaded = true
		l.loadErr = err
		l.mu.Unlock()
		return err
	}
	l.cancel = cancel

	go func() {
		timer := time.NewTimer(l.loadTimeout)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-l.first:
		case <-timer.C:
			l.mu.Lock()
			if !l.loaded {
				l.loaded = true
				l.loadErr = ErrStoreLoadTimeout
			}
			l.mu.Unlock()
		}
	}()
	return nil
}

func (l *liveList[T]) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *liveList[T]) onSnapshot(snap interfaces.Snapshot) {
	ids := make([]string, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	// Snapshot maps have no order; sort by key so recomputation is
	// deterministic and stable sorts downstream stay meaningful.
	sort.Strings(ids)

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		if it, ok := l.decode(id, snap[id]); ok {
			items = append(items, it)
		}
	}

	l.mu.Lock()
	l.items = items
	l.loaded = true
	l.loadErr = nil
	l.mu.Unlock()

	l.firstOnce.Do(func() { close(l.first) })
}

// Items returns a copy of the current collection. After a transport failure
// the list is empty and the error is returned alongside it.
func (l *liveList[T]) Items() ([]T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out, l.loadErr
}
