package monitor_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/termsnake/internal/monitor"
)

// TestRenderChannel_NeverStale publishes strictly increasing scores and
// checks the consumer never sees an empty signal or a score older than one
// it has already seen.
// Run with: go test -race ./internal/monitor
func TestRenderChannel_NeverStale(t *testing.T) {
	m := monitor.New()
	const count = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= count; i++ {
			m.PublishRenderSignal(monitor.RenderSnakeRefresh, monitor.Snapshot{Score: i})
		}
		m.PublishRenderSignal(monitor.RenderGameExit, monitor.Snapshot{Score: count + 1})
	}()

	last := 0
	seen := 0
	for {
		sig, snap := m.AwaitRenderSignal()
		if sig == monitor.RenderNone {
			t.Fatal("AwaitRenderSignal returned RenderNone")
		}
		if snap.Score <= last {
			t.Fatalf("stale value: got score %d after %d", snap.Score, last)
		}
		last = snap.Score
		seen++
		if sig == monitor.RenderGameExit {
			break
		}
	}
	wg.Wait()

	if last != count+1 {
		t.Errorf("expected final score %d, got %d", count+1, last)
	}
	t.Logf("observed %d of %d published values", seen, count+1)
}

// TestGameChannel_ConcurrentTicksAndKeys races a ticker against a key
// producer. The consumer must see every key producer's final EXIT.
func TestGameChannel_ConcurrentTicksAndKeys(t *testing.T) {
	m := monitor.New()
	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				m.PublishGameTick()
			}
		}
	}()

	keys := []monitor.GameSignal{
		monitor.SignalMoveUp, monitor.SignalMoveLeft,
		monitor.SignalMoveDown, monitor.SignalMoveRight,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			m.PublishGameSignal(keys[i%len(keys)])
		}
		m.PublishGameSignal(monitor.SignalExit)
	}()

	for {
		sig := m.AwaitGameSignal()
		if sig == monitor.SignalNone {
			t.Fatal("AwaitGameSignal returned SignalNone")
		}
		if sig == monitor.SignalExit {
			break
		}
	}
	close(stop)
	wg.Wait()
}
