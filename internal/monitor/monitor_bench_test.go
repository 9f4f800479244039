package monitor_test

import (
	"testing"

	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkSignal monitor.GameSignal
var sinkBool bool

// Uncontended publish and await on one goroutine.
func BenchmarkMonitor_PublishAwait(b *testing.B) {
	m := monitor.New()
	b.ReportAllocs()
	b.ResetTimer()

	var sig monitor.GameSignal
	for i := 0; i < b.N; i++ {
		m.PublishGameSignal(monitor.SignalMoveUp)
		sig = m.AwaitGameSignal()
	}
	sinkSignal = sig
}

// A tick into a busy slot is the pacer's skip path.
func BenchmarkMonitor_PublishGameTick_Busy(b *testing.B) {
	m := monitor.New()
	m.PublishGameSignal(monitor.SignalMoveUp)
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = m.PublishGameTick()
	}
	sinkBool = ok
}

// Input to game to render and back, across two goroutines.
func BenchmarkMonitor_RoundTrip(b *testing.B) {
	m := monitor.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m.AwaitGameSignal() != monitor.SignalExit {
			m.PublishRenderSignal(monitor.RenderSnakeRefresh, monitor.Snapshot{})
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.PublishGameSignal(monitor.SignalMoveUp)
		m.AwaitRenderSignal()
	}
	b.StopTimer()

	m.PublishGameSignal(monitor.SignalExit)
	<-done
}

// The same round trip over buffered channels of capacity one.
func BenchmarkChannel_RoundTrip(b *testing.B) {
	game := make(chan monitor.GameSignal, 1)
	render := make(chan monitor.RenderSignal, 1)
	go func() {
		for sig := range game {
			if sig == monitor.SignalExit {
				return
			}
			render <- monitor.RenderSnakeRefresh
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		game <- monitor.SignalMoveUp
		<-render
	}
	b.StopTimer()

	game <- monitor.SignalExit
}
