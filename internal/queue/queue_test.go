package queue_test

import (
	"testing"

	"github.com/randomizedcoder/termsnake/internal/queue"
)

func testQueue[T comparable](t *testing.T, q queue.Queue[T], val T, name string) {
	t.Helper()

	// Empty queue returns false
	if _, ok := q.Pop(); ok {
		t.Errorf("%s: expected Pop() = false on empty queue", name)
	}

	// Push succeeds
	if !q.Push(val) {
		t.Errorf("%s: expected Push() = true", name)
	}

	// Pop returns pushed value
	got, ok := q.Pop()
	if !ok {
		t.Errorf("%s: expected Pop() = true after Push()", name)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Queue is empty again
	if _, ok := q.Pop(); ok {
		t.Errorf("%s: expected Pop() = false after draining", name)
	}
	if q.Len() != 0 {
		t.Errorf("%s: expected Len() = 0 after draining, got %d", name, q.Len())
	}
}

func TestRing(t *testing.T) {
	testQueue[int](t, queue.NewRing[int](), 42, "Ring[int]")
	testQueue[string](t, queue.NewRing[string](), "up", "Ring[string]")
}

func TestRing_FIFO(t *testing.T) {
	q := queue.NewRing[int]()

	for i := 0; i < 5; i++ {
		if !q.Push(i) {
			t.Fatalf("expected Push(%d) = true", i)
		}
	}

	for i := 0; i < 5; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("expected Pop() = true for item %d", i)
		}
		if got != i {
			t.Errorf("FIFO violation: expected %d, got %d", i, got)
		}
	}
}

func TestRing_FrontBackAt(t *testing.T) {
	for n := 1; n <= queue.InitialCapacity; n++ {
		q := queue.NewRing[int]()
		for i := 1; i <= n; i++ {
			q.Push(i * 10)
		}

		if v, ok := q.Front(); !ok || v != 10 {
			t.Errorf("n=%d: expected Front() = 10, got %d (ok=%v)", n, v, ok)
		}
		if v, ok := q.Back(); !ok || v != n*10 {
			t.Errorf("n=%d: expected Back() = %d, got %d (ok=%v)", n, n*10, v, ok)
		}
		for i := 0; i < n; i++ {
			if v, ok := q.At(i); !ok || v != (i+1)*10 {
				t.Errorf("n=%d: expected At(%d) = %d, got %d", n, i, (i+1)*10, v)
			}
		}
		if _, ok := q.At(n); ok {
			t.Errorf("n=%d: expected At(%d) out of range", n, n)
		}
		if _, ok := q.At(-1); ok {
			t.Errorf("n=%d: expected At(-1) out of range", n)
		}
	}
}

func TestRing_LenCap(t *testing.T) {
	q := queue.NewRing[int]()

	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
	if q.Cap() != queue.InitialCapacity {
		t.Errorf("expected Cap() = %d, got %d", queue.InitialCapacity, q.Cap())
	}

	q.Push(1)
	q.Push(2)

	if q.Len() != 2 {
		t.Errorf("expected Len() = 2, got %d", q.Len())
	}
}

func TestRing_GrowthDoubles(t *testing.T) {
	q := queue.NewRing[int]()
	for i := 1; i <= 9; i++ {
		q.Push(i)
	}

	if q.Cap() != 16 {
		t.Errorf("expected Cap() = 16 after 9 pushes, got %d", q.Cap())
	}
	if q.Len() != 9 {
		t.Errorf("expected Len() = 9, got %d", q.Len())
	}
	if v, _ := q.At(0); v != 1 {
		t.Errorf("expected At(0) = 1, got %d", v)
	}
	if v, _ := q.At(8); v != 9 {
		t.Errorf("expected At(8) = 9, got %d", v)
	}
}

func TestRing_GrowthWhileWrapped(t *testing.T) {
	q := queue.NewRing[int]()

	// Fill, drain half, refill so the live span wraps past the end.
	for i := 0; i < 8; i++ {
		q.Push(i)
	}
	for i := 0; i < 4; i++ {
		q.Pop()
	}
	for i := 8; i < 12; i++ {
		q.Push(i)
	}
	before := q.Slice()

	// Ring is full and wrapped; this push relinearizes it.
	q.Push(12)

	if q.Cap() != 16 {
		t.Fatalf("expected Cap() = 16, got %d", q.Cap())
	}
	for i, want := range before {
		if v, _ := q.At(i); v != want {
			t.Errorf("At(%d) changed across growth: want %d, got %d", i, want, v)
		}
	}
	if v, _ := q.Back(); v != 12 {
		t.Errorf("expected Back() = 12, got %d", v)
	}
}

func TestRing_PopThenPushComposition(t *testing.T) {
	q := queue.NewRing[int]()
	for i := 0; i < 6; i++ {
		q.Push(i)
	}

	const k = 4
	for i := 0; i < k; i++ {
		q.Pop()
	}
	for i := 100; i < 100+k; i++ {
		q.Push(i)
	}

	want := []int{4, 5, 100, 101, 102, 103}
	if q.Len() != len(want) {
		t.Fatalf("expected Len() = %d, got %d", len(want), q.Len())
	}
	for i, w := range want {
		if v, _ := q.At(i); v != w {
			t.Errorf("At(%d): want %d, got %d", i, w, v)
		}
	}
}

func TestRing_PushAfterDrainAtOffset(t *testing.T) {
	q := queue.NewRing[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)
	q.Pop()
	q.Pop()
	q.Pop()

	q.Push(7)
	if v, ok := q.Front(); !ok || v != 7 {
		t.Errorf("expected Front() = 7 after drain and push, got %d (ok=%v)", v, ok)
	}
	if v, ok := q.Back(); !ok || v != 7 {
		t.Errorf("expected Back() = 7 after drain and push, got %d (ok=%v)", v, ok)
	}
}

func TestRing_IsEmpty(t *testing.T) {
	var nilRing *queue.Ring[int]
	if !nilRing.IsEmpty() {
		t.Error("expected nil ring to be empty")
	}

	q := queue.NewRing[int]()
	if !q.IsEmpty() {
		t.Error("expected fresh ring to be empty")
	}
	q.Push(1)
	if q.IsEmpty() {
		t.Error("expected IsEmpty() = false after Push()")
	}
	q.Pop()
	if !q.IsEmpty() {
		t.Error("expected IsEmpty() = true after popping the last element")
	}
}

func TestRing_RoundTrip(t *testing.T) {
	q := queue.NewRing[int]()
	const m = 37
	for i := 0; i < m; i++ {
		q.Push(i)
	}
	for i := 0; i < m; i++ {
		q.Pop()
	}

	fresh := queue.NewRing[int]()
	if q.Len() != fresh.Len() || q.IsEmpty() != fresh.IsEmpty() {
		t.Errorf("expected drained ring to match a fresh one: Len %d/%d IsEmpty %v/%v",
			q.Len(), fresh.Len(), q.IsEmpty(), fresh.IsEmpty())
	}
	if _, ok := q.Front(); ok {
		t.Error("expected Front() = false on drained ring")
	}
}

func TestRing_GrowFailureKeepsState(t *testing.T) {
	q := queue.NewRing[int]()
	queue.SetMaxCapacity(q, queue.InitialCapacity)
	for i := 0; i < queue.InitialCapacity; i++ {
		q.Push(i)
	}

	if q.Push(99) {
		t.Fatal("expected Push() = false when growth is refused")
	}
	if err := q.Grow(); err != queue.ErrGrowFailed {
		t.Errorf("expected ErrGrowFailed, got %v", err)
	}
	if q.Len() != queue.InitialCapacity || q.Cap() != queue.InitialCapacity {
		t.Errorf("expected ring unchanged, got Len %d Cap %d", q.Len(), q.Cap())
	}
	if v, _ := q.Back(); v != queue.InitialCapacity-1 {
		t.Errorf("expected Back() = %d, got %d", queue.InitialCapacity-1, v)
	}
}

func TestRing_Destroy(t *testing.T) {
	q := queue.NewRing[int]()
	q.Push(1)
	q.Destroy()
	q.Destroy()

	if !q.IsEmpty() {
		t.Error("expected destroyed ring to be empty")
	}
	if q.Push(2) {
		t.Error("expected Push() = false on destroyed ring")
	}

	var nilRing *queue.Ring[int]
	nilRing.Destroy()
}

func TestRing_Each(t *testing.T) {
	q := queue.NewRing[string]()
	for _, s := range []string{"a", "b", "c"} {
		q.Push(s)
	}

	var seen []string
	q.Each(func(i int, v string) bool {
		seen = append(seen, v)
		return i < 1
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("expected Each to stop after two elements, got %v", seen)
	}
}

// Test that implementations satisfy the interface
func TestQueueInterface(t *testing.T) {
	testCases := []struct {
		name string
		q    queue.Queue[int]
	}{
		{"Ring", queue.NewRing[int]()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, 42, tc.name)
		})
	}
}
