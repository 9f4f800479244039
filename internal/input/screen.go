package input

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// ErrClosed is returned by ReadKey once the event source has shut down.
var ErrClosed = errors.New("input: event source closed")

// DefaultReadTimeout bounds one ReadKey call.
const DefaultReadTimeout = 100 * time.Millisecond

// EventSource is the part of tcell.Screen that delivers input. PollEvent
// blocks and returns nil once the screen is finalised.
type EventSource interface {
	PollEvent() tcell.Event
}

// ScreenKeys is a KeySource fed by a tcell screen's event queue.
//
// A pump goroutine moves events into a channel, so ReadKey can give up
// after a timeout and let the input loop look at its stop flag. tcell
// decodes every key in a burst into its own event; none are merged.
type ScreenKeys struct {
	events  chan tcell.Event
	quit    chan struct{}
	once    sync.Once
	clock   clockwork.Clock
	timeout time.Duration
	resized func()
}

// NewScreenKeys starts pumping events from src. A zero timeout picks
// DefaultReadTimeout; resized, if not nil, runs on every resize event.
func NewScreenKeys(src EventSource, clock clockwork.Clock, timeout time.Duration, resized func()) *ScreenKeys {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	k := &ScreenKeys{
		events:  make(chan tcell.Event, 16),
		quit:    make(chan struct{}),
		clock:   clock,
		timeout: timeout,
		resized: resized,
	}
	go k.pump(src)
	return k
}

func (k *ScreenKeys) pump(src EventSource) {
	defer close(k.events)
	for {
		ev := src.PollEvent()
		if ev == nil {
			log.Debug("Event source finalised")
			return
		}
		select {
		case k.events <- ev:
		case <-k.quit:
			return
		}
	}
}

// ReadKey returns the next key, KeyNone once the timeout passes without
// one, or ErrClosed after the source shut down. Non-key events are
// consumed while waiting.
func (k *ScreenKeys) ReadKey() (Key, error) {
	timer := k.clock.NewTimer(k.timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return KeyNone, ErrClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return KeyFromEvent(ev), nil
			case *tcell.EventResize:
				if k.resized != nil {
					k.resized()
				}
			}
		case <-timer.Chan():
			return KeyNone, nil
		}
	}
}

// Close stops the pump. Events still queued are dropped.
func (k *ScreenKeys) Close() {
	k.once.Do(func() { close(k.quit) })
}
