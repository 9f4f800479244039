// Package cancel provides the cooperative stop flags used by session
// workers.
//
// The game pipeline itself shuts down through its EXIT and GAME_EXIT
// signals. These flags cover the workers outside that pipeline: the input
// loop polls an AtomicCanceler before every key read, and the frame pacer
// waits on a ContextCanceler.
package cancel

import (
	"context"
	"sync/atomic"
)

// Canceler is a one-way stop flag. Done and Cancel may be called from any
// goroutine, and Cancel any number of times.
type Canceler interface {
	Done() bool
	Cancel()
}

var (
	_ Canceler = (*AtomicCanceler)(nil)
	_ Canceler = (*ContextCanceler)(nil)
)

// AtomicCanceler is a stop flag read with one atomic load.
type AtomicCanceler struct {
	stopped atomic.Bool
}

// NewAtomic returns a lowered flag.
func NewAtomic() *AtomicCanceler {
	return new(AtomicCanceler)
}

func (a *AtomicCanceler) Done() bool { return a.stopped.Load() }

func (a *AtomicCanceler) Cancel() { a.stopped.Store(true) }

// ContextCanceler is a stop flag backed by a child context, for workers
// that wait on Context().Done() in a select. Cancelling the parent also
// raises it.
type ContextCanceler struct {
	ctx  context.Context
	stop context.CancelFunc
}

// NewContext derives the flag's context from parent.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, stop := context.WithCancel(parent)
	return &ContextCanceler{ctx: ctx, stop: stop}
}

// Done reports whether the context has ended, for whatever reason.
func (c *ContextCanceler) Done() bool { return c.ctx.Err() != nil }

func (c *ContextCanceler) Cancel() { c.stop() }

func (c *ContextCanceler) Context() context.Context { return c.ctx }
