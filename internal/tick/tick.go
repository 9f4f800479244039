// Package tick provides the fixed-rate frame clock that drives the game.
//
// A Ticker delivers one tick per frame interval. A Pacer turns those ticks
// into calls of a frame function until its context is cancelled.
//
// Both take a clockwork.Clock so tests can drive frames with a fake clock
// instead of sleeping.
package tick

import "time"

// Ticker signals when a frame interval has elapsed.
type Ticker interface {
	// Chan delivers a value every interval. Ticks are dropped, not queued,
	// if the receiver falls behind.
	Chan() <-chan time.Time

	// Tick returns true if a tick is pending, consuming it.
	// This is a non-blocking check.
	Tick() bool

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// DefaultInterval is the frame interval of the game loop: ten frames per
// second, the pace of a terminal half-delay read.
const DefaultInterval = 100 * time.Millisecond
