package queue

// Ring is a generic circular dynamic queue.
//
// Elements live in a single slice used as a ring: the element at logical
// position i (0 = oldest) is stored at slot (head+i) % len(buf). When a push
// finds every slot taken the slice is doubled and the ring is unrolled into
// the new slice, oldest first.
//
// The zero value is not usable; construct with NewRing. A nil *Ring behaves
// as an empty queue for every read accessor.
type Ring[T any] struct {
	buf  []T
	head int
	tail int
	n    int

	// maxCap caps growth; tests lower it to exercise the failure path.
	maxCap int
}

// NewRing creates an empty Ring with InitialCapacity slots.
func NewRing[T any]() *Ring[T] {
	return &Ring[T]{
		buf:    make([]T, InitialCapacity),
		maxCap: MaxCapacity,
	}
}

// Push appends v after the newest element, growing the ring first if it is
// full. Returns false, leaving the ring untouched, if growth fails.
func (r *Ring[T]) Push(v T) bool {
	if r == nil || r.buf == nil {
		return false
	}
	if r.n == len(r.buf) {
		if err := r.Grow(); err != nil {
			return false
		}
	}

	// An empty ring restarts at head, which Pop may have moved off slot 0.
	idx := r.tail + 1
	if r.n == 0 {
		idx = r.head
	} else if idx == len(r.buf) {
		idx = 0
	}
	r.buf[idx] = v
	r.tail = idx
	r.n++
	return true
}

// Grow doubles the backing slice and relinearizes the ring so the oldest
// element sits at slot 0. On failure the ring is unchanged.
func (r *Ring[T]) Grow() error {
	if r == nil || r.buf == nil {
		return ErrGrowFailed
	}
	size := len(r.buf) * 2
	if size > r.maxCap || size <= 0 {
		return ErrGrowFailed
	}

	buf := make([]T, size)
	// Oldest span first, then the wrapped prefix.
	first := copy(buf, r.buf[r.head:min(r.head+r.n, len(r.buf))])
	copy(buf[first:], r.buf[:r.n-first])

	r.buf = buf
	r.head = 0
	r.tail = r.n - 1
	return nil
}

// Pop removes and returns the oldest element. The vacated slot is reset to
// the zero value so the ring holds no stale references.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r == nil || r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.n--
	return v, true
}

// Front returns the oldest element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	var zero T
	if r == nil || r.n == 0 {
		return zero, false
	}
	return r.buf[r.head], true
}

// Back returns the newest element without removing it.
func (r *Ring[T]) Back() (T, bool) {
	var zero T
	if r == nil || r.n == 0 {
		return zero, false
	}
	return r.buf[r.tail], true
}

// At returns the element at logical position i, where 0 is the oldest.
// Returns false if i is out of range.
func (r *Ring[T]) At(i int) (T, bool) {
	var zero T
	if r == nil || i < 0 || i >= r.n {
		return zero, false
	}
	idx := r.head + i
	if idx >= len(r.buf) {
		idx -= len(r.buf)
	}
	return r.buf[idx], true
}

// Each calls fn for every element from oldest to newest until fn returns
// false.
func (r *Ring[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < r.Len(); i++ {
		v, _ := r.At(i)
		if !fn(i, v) {
			return
		}
	}
}

// Slice returns a copy of the live elements, oldest first.
func (r *Ring[T]) Slice() []T {
	out := make([]T, 0, r.Len())
	r.Each(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// IsEmpty reports whether the ring holds no elements. A nil ring is empty.
func (r *Ring[T]) IsEmpty() bool {
	return r == nil || r.n == 0
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.n
}

// Cap returns the current number of slots.
func (r *Ring[T]) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.buf)
}

// Destroy releases the backing storage. The ring reads as empty afterwards
// and every push fails. Safe to call more than once and on a nil ring.
func (r *Ring[T]) Destroy() {
	if r == nil {
		return
	}
	r.buf = nil
	r.head, r.tail, r.n = 0, 0, 0
}
