// Package queue provides growable circular queues.
//
// Two containers share the same growth and indexing rules:
//   - Ring: generic circular dynamic queue over an element type T, which
//     implements Queue
//   - ByteRing: the same queue over raw fixed-stride byte records
//
// Both start with InitialCapacity slots and double their capacity when a
// push finds them full. Growth relinearizes the ring so the oldest element
// lands at slot 0. Capacity never shrinks.
//
// # Concurrency
//
// Neither implementation is safe for concurrent use. Callers that share a
// queue between goroutines must serialize access themselves.
package queue

import "errors"

// InitialCapacity is the slot count of a freshly constructed queue.
const InitialCapacity = 8

// MaxCapacity bounds growth. A push that would need more slots than this
// fails the same way an allocation failure would.
const MaxCapacity = 1 << 30

var (
	// ErrInvalidStride is returned when a ByteRing is constructed with a
	// stride smaller than one byte.
	ErrInvalidStride = errors.New("queue: stride must be at least 1")

	// ErrGrowFailed is returned when the backing storage cannot be doubled.
	// The queue is left exactly as it was.
	ErrGrowFailed = errors.New("queue: cannot grow backing storage")
)

// Queue is an unbounded FIFO queue.
//
// Push returns false only when the queue could not grow to make room; the
// element is dropped in that case. Pop returns false if the queue is empty.
type Queue[T any] interface {
	// Push appends an item after the newest element.
	Push(T) bool

	// Pop removes and returns the oldest element.
	Pop() (T, bool)

	// Len returns the number of live elements.
	Len() int
}
