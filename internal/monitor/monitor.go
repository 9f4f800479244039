// Package monitor implements the shared coordination state between the
// input, game and render goroutines.
//
// A Monitor holds two single-slot mailboxes guarded by one mutex:
//
//	input  --PublishGameSignal-->   [game slot]   --AwaitGameSignal-->   game
//	game   --PublishRenderSignal--> [render slot] --AwaitRenderSignal--> render
//
// # Delivery guarantee
//
// Each slot holds at most one pending value. Publishing overwrites whatever
// is pending, so delivery is at-most-once and latest-value: a consumer
// always sees the most recent value published before it woke, and any
// value overwritten before it was drained is never seen. Publishers never
// block on consumers.
//
// The one exception is PublishGameTick, which fills only an idle slot so
// periodic frame ticks cannot overwrite a pending key signal.
package monitor

import "sync"

// Monitor is the mutex and condition variable pair shared by one game
// session. Create it before starting any worker and share it by pointer.
type Monitor struct {
	mu sync.Mutex

	gameReady   *sync.Cond
	renderReady *sync.Cond

	game     GameSignal
	render   RenderSignal
	snapshot Snapshot
}

// New creates a Monitor with both slots empty.
func New() *Monitor {
	m := &Monitor{}
	m.gameReady = sync.NewCond(&m.mu)
	m.renderReady = sync.NewCond(&m.mu)
	return m
}

// PublishGameSignal overwrites the game slot with sig and wakes the game
// loop. Publishing SignalNone clears a pending signal.
func (m *Monitor) PublishGameSignal(sig GameSignal) {
	m.mu.Lock()
	m.game = sig
	m.gameReady.Signal()
	m.mu.Unlock()
}

// PublishGameTick writes SignalTick only if the game slot is idle. It
// reports whether the tick was written.
func (m *Monitor) PublishGameTick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.game != SignalNone {
		return false
	}
	m.game = SignalTick
	m.gameReady.Signal()
	return true
}

// AwaitGameSignal blocks until the game slot is non-empty, then clears it
// and returns the value it held.
func (m *Monitor) AwaitGameSignal() GameSignal {
	m.mu.Lock()
	for m.game == SignalNone {
		m.gameReady.Wait()
	}
	sig := m.game
	m.game = SignalNone
	m.mu.Unlock()
	return sig
}

// PublishRenderSignal overwrites the render slot with sig and snap and
// wakes the render loop.
func (m *Monitor) PublishRenderSignal(sig RenderSignal, snap Snapshot) {
	m.mu.Lock()
	m.render = sig
	m.snapshot = snap
	m.renderReady.Signal()
	m.mu.Unlock()
}

// AwaitRenderSignal blocks until the render slot is non-empty, then clears
// it and returns the signal with the snapshot published alongside it.
func (m *Monitor) AwaitRenderSignal() (RenderSignal, Snapshot) {
	m.mu.Lock()
	for m.render == RenderNone {
		m.renderReady.Wait()
	}
	sig, snap := m.render, m.snapshot
	m.render = RenderNone
	m.snapshot = Snapshot{}
	m.mu.Unlock()
	return sig, snap
}

// PendingGameSignal returns the game slot without consuming it.
func (m *Monitor) PendingGameSignal() GameSignal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game
}

// PendingRenderSignal returns the render slot without consuming it.
func (m *Monitor) PendingRenderSignal() RenderSignal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.render
}
