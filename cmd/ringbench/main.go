// Command ringbench compares the growable ring buffers with eapache/queue.
//
// Usage:
//
//	go run ./cmd/ringbench -n 10000000 -depth 64
package main

import (
	"flag"
	"fmt"
	"time"

	eapache "github.com/eapache/queue"

	"github.com/randomizedcoder/termsnake/internal/queue"
)

type result struct {
	name string
	dur  time.Duration
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	depth := flag.Int("depth", 64, "elements kept queued during the run")
	flag.Parse()

	fmt.Printf("Benchmarking FIFO queues (%d iterations, depth=%d)\n", *iterations, *depth)
	fmt.Println("─────────────────────────────────────────────────")

	results := []result{
		{"Ring[int]", runRing(*iterations, *depth)},
		{"ByteRing(8)", runByteRing(*iterations, *depth)},
		{"eapache/queue", runEapache(*iterations, *depth)},
	}

	// Results
	fmt.Printf("\nResults (push + pop per iteration):\n")
	baseline := float64(results[len(results)-1].dur.Nanoseconds()) / float64(*iterations)
	for _, r := range results {
		perOp := float64(r.dur.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-14s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			r.name, r.dur, perOp, baseline/perOp, 1000/perOp)
	}
	fmt.Printf("\nSpeedup is relative to eapache/queue.\n")
}

func runRing(n, depth int) time.Duration {
	q := queue.NewRing[int]()
	for i := 0; i < depth; i++ {
		q.Push(i)
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		q.Push(i)
		q.Pop()
	}
	return time.Since(start)
}

func runByteRing(n, depth int) time.Duration {
	q, err := queue.NewByteRing(8)
	if err != nil {
		panic(err)
	}
	rec := make([]byte, 8)
	for i := 0; i < depth; i++ {
		q.Push(rec)
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		rec[0] = byte(i)
		q.Push(rec)
		q.Pop()
	}
	return time.Since(start)
}

func runEapache(n, depth int) time.Duration {
	q := eapache.New()
	for i := 0; i < depth; i++ {
		q.Add(i)
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		q.Add(i)
		q.Remove()
	}
	return time.Since(start)
}
