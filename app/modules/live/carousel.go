package live

import (
	"context"
	"sync"
	"time"

	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
)

// Carousel advances a display cursor through ranked rows on its own timer,
// independent of the data poller: neither assumes the other's cadence. The
// cursor wraps modulo the row count and is clamped when a refresh shrinks
// the list, so a mid-scroll refresh never leaves it out of range.
type Carousel struct {
	period  time.Duration
	metrics observability.LiveMetrics

	mu       sync.Mutex
	cursor   int
	count    int
	paused   bool
	hovering bool

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewCarousel builds a carousel; Run starts the rotation timer.
func NewCarousel(period time.Duration, metrics observability.LiveMetrics) *Carousel {
	return &Carousel{
		period:  period,
		metrics: metrics,
		stopped: make(chan struct{}),
	}
}

// Run rotates until the context is cancelled or Stop is called.
func (c *Carousel) Run(ctx context.Context) {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopped:
			return
		case <-ticker.C:
			c.Advance()
		}
	}
}

// Stop cancels the rotation timer. Safe to call more than once.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() { close(c.stopped) })
}

// Advance moves the cursor one row, wrapping at the end. Rotation is
// suspended while paused or while the pointer hovers the table — reading a
// fixed row takes priority over rotation.
func (c *Carousel) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused || c.hovering || c.count == 0 {
		return
	}
	c.cursor = (c.cursor + 1) % c.count
	c.metrics.RecordCarouselAdvance()
}

// SetCount records the row count after a data refresh and clamps the cursor
// into range. Cursor state is deliberately separate from data state.
func (c *Carousel) SetCount(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count = count
	if count == 0 {
		c.cursor = 0
		return
	}
	if c.cursor >= count {
		c.cursor = count - 1
	}
}

// SetHovering suspends rotation while the pointer is over the table.
func (c *Carousel) SetHovering(hovering bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovering = hovering
}

// Pause suspends rotation until Resume.
func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts rotation from the top of the list.
func (c *Carousel) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	c.cursor = 0
}

// Cursor returns the current cursor position.
func (c *Carousel) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Paused reports whether rotation is explicitly paused.
func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
