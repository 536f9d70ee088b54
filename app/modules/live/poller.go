// Package live keeps a public leaderboard display fresh: a fixed-cadence
// refresh poller and an auto-rotating row carousel, both independently
// cancellable, plus per-row expansion state that survives refreshes.
package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// FetchFunc produces the latest leaderboard snapshot.
type FetchFunc func(ctx context.Context) (*leaderboardservice.Snapshot, error)

// State is what the display reads on each render: the last-known-good
// snapshot plus staleness. A failed refresh never blanks the screen; it keeps
// the previous snapshot and raises Stale.
type State struct {
	Snapshot    *leaderboardservice.Snapshot `json:"snapshot"`
	Stale       bool                         `json:"stale"`
	LastError   string                       `json:"last_error,omitempty"`
	LastFetched time.Time                    `json:"last_fetched"`
}

// Poller re-fetches the leaderboard at a fixed cadence. There is no backoff:
// for a live display, staleness matters more than server load, and retry is
// implicit in the next tick.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	logger   *slog.Logger
	metrics  observability.LiveMetrics

	// onUpdate fires only when the snapshot actually changed.
	onUpdate func(*leaderboardservice.Snapshot)

	mu    sync.Mutex
	state State

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewPoller builds a poller; Run starts it.
func NewPoller(fetch FetchFunc, interval time.Duration, logger *slog.Logger, metrics observability.LiveMetrics) *Poller {
	return &Poller{
		fetch:    fetch,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
		stopped:  make(chan struct{}),
	}
}

// OnUpdate registers the change callback. Must be called before Run.
func (p *Poller) OnUpdate(fn func(*leaderboardservice.Snapshot)) {
	p.onUpdate = fn
}

// Run fetches immediately, then on every tick until the context is cancelled
// or Stop is called. Each cycle is independent; a failure never stops the
// next scheduled tick.
func (p *Poller) Run(ctx context.Context) {
	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopped:
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Stop cancels the loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

// State returns a copy of the current display state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) tick(ctx context.Context) {
	p.metrics.RecordPollTick()

	snapshot, err := p.fetch(ctx)
	if err != nil {
		p.metrics.RecordPollFailure()
		p.logger.WarnContext(ctx, "Leaderboard refresh failed, keeping last known good",
			attr.Error(err),
		)
		p.mu.Lock()
		p.state.Stale = true
		p.state.LastError = err.Error()
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	changed := p.state.Snapshot == nil || snapshot.LastUpdated.After(p.state.Snapshot.LastUpdated)
	p.state = State{
		Snapshot:    snapshot,
		Stale:       false,
		LastFetched: time.Now().UTC(),
	}
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if changed && onUpdate != nil {
		onUpdate(snapshot)
	}
}
