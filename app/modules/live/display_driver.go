package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
)

// Display wires the poller, carousel, and expansion state into one
// cancellable unit driving a public leaderboard screen.
type Display struct {
	Poller    *Poller
	Carousel  *Carousel
	Expansion *ExpansionState

	cancel context.CancelFunc
}

// View is a consistent read of everything the screen renders.
type View struct {
	State    State       `json:"state"`
	Cursor   int         `json:"cursor"`
	Paused   bool        `json:"paused"`
	Expanded []uuid.UUID `json:"expanded"`
}

// NewDisplay builds a display driver. On every data change the carousel is
// clamped to the new entry count and expansion state is pruned by key, so
// scroll position and open rows survive rank shifts.
func NewDisplay(
	fetch FetchFunc,
	pollInterval, carouselPeriod time.Duration,
	logger *slog.Logger,
	metrics observability.LiveMetrics,
) *Display {
	d := &Display{
		Poller:    NewPoller(fetch, pollInterval, logger, metrics),
		Carousel:  NewCarousel(carouselPeriod, metrics),
		Expansion: NewExpansionState(),
	}

	d.Poller.OnUpdate(func(snapshot *leaderboardservice.Snapshot) {
		d.Carousel.SetCount(len(snapshot.Entries))

		ids := make([]uuid.UUID, 0, len(snapshot.Entries))
		for _, e := range snapshot.Entries {
			ids = append(ids, e.ParticipantID)
		}
		d.Expansion.Retain(ids)
	})

	return d
}

// Run starts both timers. They are independent: neither assumes the other's
// cadence, and each can be torn down without the other.
func (d *Display) Run(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	go d.Poller.Run(ctx)
	go d.Carousel.Run(ctx)
}

// Stop cancels every timer. Leaked periodic callbacks acting on stale state
// are a resource-cleanup bug, not a performance concern.
func (d *Display) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
	d.Poller.Stop()
	d.Carousel.Stop()
}

// View returns the current render state.
func (d *Display) View() View {
	return View{
		State:    d.Poller.State(),
		Cursor:   d.Carousel.Cursor(),
		Paused:   d.Carousel.Paused(),
		Expanded: d.Expansion.Expanded(),
	}
}
