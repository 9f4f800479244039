package queue

// ByteRing is a circular dynamic queue of fixed-size byte records.
//
// Every record is exactly Stride bytes. Records are copied in on Push and
// handed out as read-only views into the backing storage; a view is only
// valid until the next Push, Pop, Grow or Destroy.
type ByteRing struct {
	data   []byte
	stride int
	slots  int
	head   int
	tail   int
	n      int

	maxCap int
}

// NewByteRing creates an empty ByteRing holding records of stride bytes.
func NewByteRing(stride int) (*ByteRing, error) {
	if stride < 1 {
		return nil, ErrInvalidStride
	}
	if InitialCapacity > MaxCapacity/stride {
		return nil, ErrGrowFailed
	}
	return &ByteRing{
		data:   make([]byte, InitialCapacity*stride),
		stride: stride,
		slots:  InitialCapacity,
		maxCap: MaxCapacity,
	}, nil
}

// Push copies the first Stride bytes of rec into the ring. It returns false,
// leaving the ring untouched, if rec is shorter than Stride or the ring is
// full and cannot grow.
func (b *ByteRing) Push(rec []byte) bool {
	if b == nil || b.data == nil || len(rec) < b.stride {
		return false
	}
	if b.n == b.slots {
		if err := b.Grow(); err != nil {
			return false
		}
	}

	idx := b.tail + 1
	if b.n == 0 {
		idx = b.head
	} else if idx == b.slots {
		idx = 0
	}
	copy(b.slot(idx), rec[:b.stride])
	b.tail = idx
	b.n++
	return true
}

// Grow doubles the slot count and unrolls the ring so the oldest record is
// at slot 0. On failure the ring is unchanged.
func (b *ByteRing) Grow() error {
	if b == nil || b.data == nil {
		return ErrGrowFailed
	}
	slots := b.slots * 2
	if slots <= 0 || slots > b.maxCap || slots > MaxCapacity/b.stride {
		return ErrGrowFailed
	}

	data := make([]byte, slots*b.stride)
	for i := 0; i < b.n; i++ {
		copy(data[i*b.stride:(i+1)*b.stride], b.slot((b.head+i)%b.slots))
	}

	b.data = data
	b.slots = slots
	b.head = 0
	b.tail = b.n - 1
	return nil
}

// Pop removes the oldest record and zero-fills its slot. No-op when empty.
func (b *ByteRing) Pop() bool {
	if b == nil || b.n == 0 {
		return false
	}
	clear(b.slot(b.head))
	b.head++
	if b.head == b.slots {
		b.head = 0
	}
	b.n--
	return true
}

// Front returns a view of the oldest record.
func (b *ByteRing) Front() ([]byte, bool) {
	if b == nil || b.n == 0 {
		return nil, false
	}
	return b.slot(b.head), true
}

// Back returns a view of the newest record.
func (b *ByteRing) Back() ([]byte, bool) {
	if b == nil || b.n == 0 {
		return nil, false
	}
	return b.slot(b.tail), true
}

// At returns a view of the record at logical position i (0 = oldest).
func (b *ByteRing) At(i int) ([]byte, bool) {
	if b == nil || i < 0 || i >= b.n {
		return nil, false
	}
	idx := b.head + i
	if idx >= b.slots {
		idx -= b.slots
	}
	return b.slot(idx), true
}

// IsEmpty reports whether the ring holds no records. A nil ring is empty.
func (b *ByteRing) IsEmpty() bool {
	return b == nil || b.n == 0
}

// Len returns the number of live records.
func (b *ByteRing) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Cap returns the current number of slots.
func (b *ByteRing) Cap() int {
	if b == nil {
		return 0
	}
	return b.slots
}

// Stride returns the record size in bytes.
func (b *ByteRing) Stride() int {
	if b == nil {
		return 0
	}
	return b.stride
}

// Destroy releases the backing storage. Safe on nil and on a ring that was
// already destroyed.
func (b *ByteRing) Destroy() {
	if b == nil {
		return
	}
	b.data = nil
	b.slots, b.head, b.tail, b.n = 0, 0, 0, 0
}

// slot returns the capacity-limited view of physical slot idx, so a caller
// appending to a view cannot write into the neighbouring record.
func (b *ByteRing) slot(idx int) []byte {
	off := idx * b.stride
	return b.data[off : off+b.stride : off+b.stride]
}
