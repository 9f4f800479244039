package tick

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ClockTicker wraps a clockwork.Ticker for the Ticker interface.
//
// With clockwork.NewRealClock this is a time.Ticker; with a fake clock the
// ticks follow the clock's Advance calls.
type ClockTicker struct {
	ticker   clockwork.Ticker
	interval time.Duration
}

// NewTicker creates a ClockTicker on clock with the specified interval.
func NewTicker(clock clockwork.Clock, interval time.Duration) *ClockTicker {
	return &ClockTicker{
		ticker:   clock.NewTicker(interval),
		interval: interval,
	}
}

// Chan returns the tick channel.
func (t *ClockTicker) Chan() <-chan time.Time {
	return t.ticker.Chan()
}

// Tick returns true if a tick is pending.
// This performs a non-blocking select on the ticker channel.
func (t *ClockTicker) Tick() bool {
	select {
	case <-t.ticker.Chan():
		return true
	default:
		return false
	}
}

// Stop stops the ticker and releases resources.
func (t *ClockTicker) Stop() {
	t.ticker.Stop()
}

// Interval returns the ticker's interval.
func (t *ClockTicker) Interval() time.Duration {
	return t.interval
}
