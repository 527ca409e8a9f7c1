package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"tiembanh_mousse/internal/usecase/interfaces"
)

var (
	ErrMetricNotFound = errors.New("metric not found")
	ErrInvalidMetric  = errors.New("invalid metric name")
	ErrMetricInFlight = errors.New("metric fetch already in progress")
)

const metricFetchTimeout = 8 * time.Second

type IMetricsUseCase interface {
	Fetch(ctx context.Context, name string) (json.RawMessage, error)
}

// MetricsUseCase reads the auxiliary aggregate documents (analytics,
// rankings, counters) with one-shot fetches. Each name is independently
// in-flight-flagged; a stale result that lands after a newer one simply
// overwrites on the caller side, which is acceptable for read-mostly data.
type MetricsUseCase struct {
	store interfaces.IRealtimeStore

	mu       sync.Mutex
	inflight map[string]bool
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(store interfaces.IRealtimeStore) *MetricsUseCase {
	return &MetricsUseCase{store: store, inflight: make(map[string]bool)}
}

func (u *MetricsUseCase) Fetch(ctx context.Context, name string) (json.RawMessage, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "/") {
		return nil, ErrInvalidMetric
	}

	u.mu.Lock()
	if u.inflight[name] {
		u.mu.Unlock()
		return nil, ErrMetricInFlight
	}
	u.inflight[name] = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		delete(u.inflight, name)
		u.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, metricFetchTimeout)
	defer cancel()

	doc, err := u.store.FetchOnce(ctx, "metrics/"+name)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, ErrMetricNotFound
	}
	return doc, nil
}
