package tick

import (
	"context"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// FrameFunc is called once per frame. It reports whether the frame was
// delivered; false means the frame was skipped, typically because the
// consumer had not drained the previous signal yet.
type FrameFunc func() bool

// Pacer calls a FrameFunc on every tick of its Ticker.
//
// Delivered and skipped frames are counted with atomics so Stats may be
// read from any goroutine while Run is active.
type Pacer struct {
	ticker Ticker
	frame  FrameFunc

	delivered atomic.Uint64
	skipped   atomic.Uint64
}

// NewPacer creates a Pacer. Run takes ownership of ticker and stops it on
// return.
func NewPacer(ticker Ticker, frame FrameFunc) *Pacer {
	return &Pacer{
		ticker: ticker,
		frame:  frame,
	}
}

// Run calls the frame function once per tick until ctx is done.
func (p *Pacer) Run(ctx context.Context) {
	defer p.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithFields(log.Fields{
				"delivered": p.delivered.Load(),
				"skipped":   p.skipped.Load(),
			}).Debug("Pacer stopped")
			return
		case <-p.ticker.Chan():
			if p.frame() {
				p.delivered.Add(1)
			} else {
				p.skipped.Add(1)
			}
			// Drop a tick that arrived while the frame ran so a slow frame
			// does not cause a burst.
			p.ticker.Tick()
		}
	}
}

// Stats returns the number of delivered and skipped frames so far.
func (p *Pacer) Stats() (delivered, skipped uint64) {
	return p.delivered.Load(), p.skipped.Load()
}
