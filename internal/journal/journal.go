// Package journal records session events from several goroutines without
// taking the monitor lock.
//
// Producers write into a sharded lock-free ring, one shard per producer.
// A single consumer drains the shards into an ordered, growable buffer.
// Events carry a per-journal sequence number so the drained buffer can be
// put back into the order they were recorded in, shard interleaving aside.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/termsnake/internal/queue"
)

// Producer ids. Each owns one shard of the ring.
const (
	ProducerInput uint64 = iota
	ProducerGame

	numProducers
)

// Event kinds.
const (
	KindKey   = "key"
	KindMove  = "move"
	KindFood  = "food"
	KindDeath = "death"
	KindExit  = "exit"
)

// ErrCapacity is returned by New for a capacity too small to give every
// producer a shard.
var ErrCapacity = errors.New("journal: capacity must be at least one slot per producer")

// Event is one journal record.
type Event struct {
	Seq      uint64    `json:"seq"`
	At       time.Time `json:"at"`
	Producer uint64    `json:"producer"`
	Kind     string    `json:"kind"`
	Signal   string    `json:"signal,omitempty"`
	X        int       `json:"x,omitempty"`
	Y        int       `json:"y,omitempty"`
	Score    int       `json:"score,omitempty"`
}

// Recorder accepts events from a producer. Record never blocks; it returns
// false if the event was dropped.
type Recorder interface {
	Record(producer uint64, ev Event) bool
}

// Journal is a multi-producer, single-consumer event log.
type Journal struct {
	clock clockwork.Clock
	ring  *ring.ShardedRing

	seq     atomic.Uint64
	dropped atomic.Uint64

	// Owned by the consumer.
	drained *queue.Ring[Event]
}

// New creates a Journal whose ring holds capacity in-flight events.
func New(capacity int, clock clockwork.Clock) (*Journal, error) {
	if capacity < int(numProducers) {
		return nil, ErrCapacity
	}
	r, err := ring.NewShardedRing(uint64(capacity), numProducers)
	if err != nil {
		return nil, fmt.Errorf("journal: create ring: %w", err)
	}
	return &Journal{
		clock:   clock,
		ring:    r,
		drained: queue.NewRing[Event](),
	}, nil
}

// Record stamps ev with a sequence number and the current time and writes
// it to the producer's shard. A full shard drops the event.
func (j *Journal) Record(producer uint64, ev Event) bool {
	ev.Seq = j.seq.Add(1)
	ev.At = j.clock.Now()
	ev.Producer = producer
	if !j.ring.Write(producer, ev) {
		j.dropped.Add(1)
		return false
	}
	return true
}

// Drain moves every event currently in the ring into the drained buffer
// and returns how many it moved. Only one goroutine may call Drain.
func (j *Journal) Drain() int {
	n := 0
	for {
		v, ok := j.ring.TryRead()
		if !ok {
			return n
		}
		ev, ok := v.(Event)
		if !ok {
			continue
		}
		if !j.drained.Push(ev) {
			j.dropped.Add(1)
			continue
		}
		n++
	}
}

// Events returns the drained events ordered by sequence number.
func (j *Journal) Events() []Event {
	out := j.drained.Slice()
	sort.Slice(out, func(a, b int) bool { return out[a].Seq < out[b].Seq })
	return out
}

// Len returns the number of drained events.
func (j *Journal) Len() int {
	return j.drained.Len()
}

// Dropped returns the number of events lost to full shards.
func (j *Journal) Dropped() uint64 {
	return j.dropped.Load()
}
