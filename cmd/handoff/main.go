// Command handoff measures the cost of the session's coordination
// primitives.
//
// It times a full game-signal round trip through the Monitor against a
// buffered channel of capacity one, and the per-read stop-flag check of
// the input loop for both Canceler implementations.
//
// Usage:
//
//	go run ./cmd/handoff -n 1000000
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/randomizedcoder/termsnake/internal/cancel"
	"github.com/randomizedcoder/termsnake/internal/monitor"
)

func main() {
	iterations := flag.Int("n", 1_000_000, "number of iterations")
	flag.Parse()

	fmt.Printf("Benchmarking signal hand-off (%d iterations)\n", *iterations)
	fmt.Println("─────────────────────────────────────────────────")

	monDur := monitorRoundTrip(*iterations)
	chDur := channelRoundTrip(*iterations)

	monPerOp := float64(monDur.Nanoseconds()) / float64(*iterations)
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nRound trip (publish, await, acknowledge):\n")
	fmt.Printf("  Monitor:  %v (%.2f ns/op)\n", monDur, monPerOp)
	fmt.Printf("  Channel:  %v (%.2f ns/op)\n", chDur, chPerOp)

	// Stop flag checks, one per timed-out key read.
	ctxCancel := cancel.NewContext(context.Background())
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		_ = ctxCancel.Done()
	}
	ctxDur := time.Since(start)

	atomicCancel := cancel.NewAtomic()
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		_ = atomicCancel.Done()
	}
	atomicDur := time.Since(start)

	ctxPerOp := float64(ctxDur.Nanoseconds()) / float64(*iterations)
	atomicPerOp := float64(atomicDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nStop flag check:\n")
	fmt.Printf("  Context:  %v (%.2f ns/op)\n", ctxDur, ctxPerOp)
	fmt.Printf("  Atomic:   %v (%.2f ns/op)\n", atomicDur, atomicPerOp)
	fmt.Printf("\n  Speedup:  %.2fx\n", ctxPerOp/atomicPerOp)
}

// monitorRoundTrip plays input and game: one side publishes a move, the
// other awaits it and answers on the render slot.
func monitorRoundTrip(n int) time.Duration {
	m := monitor.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if m.AwaitGameSignal() == monitor.SignalExit {
				return
			}
			m.PublishRenderSignal(monitor.RenderSnakeRefresh, monitor.Snapshot{})
		}
	}()

	start := time.Now()
	for i := 0; i < n; i++ {
		m.PublishGameSignal(monitor.SignalMoveUp)
		m.AwaitRenderSignal()
	}
	dur := time.Since(start)
	m.PublishGameSignal(monitor.SignalExit)
	<-done
	return dur
}

func channelRoundTrip(n int) time.Duration {
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

	start := time.Now()
	for i := 0; i < n; i++ {
		game <- monitor.SignalMoveUp
		<-render
	}
	dur := time.Since(start)
	game <- monitor.SignalExit
	return dur
}
